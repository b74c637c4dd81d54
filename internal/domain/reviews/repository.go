package reviews

import "context"

type Repository interface {
	Create(ctx context.Context, in NewReview) (Review, error)
	List(ctx context.Context) ([]Review, error)
}
