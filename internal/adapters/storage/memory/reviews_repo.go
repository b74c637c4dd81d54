package memory

import (
	"context"

	"dogwalking/internal/domain/reviews"
)

type reviewRepo struct {
	c *collection[reviews.Review]
}

func (r *reviewRepo) Create(ctx context.Context, in reviews.NewReview) (reviews.Review, error) {
	return r.c.insert(in.Materialize), nil
}

func (r *reviewRepo) List(ctx context.Context) ([]reviews.Review, error) {
	return r.c.list(), nil
}
