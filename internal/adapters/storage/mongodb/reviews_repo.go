package mongodb

import (
	"context"
	"fmt"
	"time"

	"dogwalking/internal/domain/reviews"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviewDoc struct {
	ID           int64     `bson:"_id"`
	CustomerName string    `bson:"customer_name"`
	PetName      string    `bson:"pet_name"`
	Rating       int       `bson:"rating"`
	Comment      string    `bson:"comment"`
	CreatedAt    time.Time `bson:"created_at"`
}

type ReviewsRepo struct {
	coll     *mongo.Collection
	counters *counters
	now      func() time.Time
}

func NewReviewsRepo(db *mongo.Database) *ReviewsRepo {
	return &ReviewsRepo{
		coll:     db.Collection(ReviewsCollection),
		counters: newCounters(db),
		now:      time.Now,
	}
}

func (r *ReviewsRepo) Create(ctx context.Context, in reviews.NewReview) (reviews.Review, error) {
	id, err := r.counters.next(ctx, ReviewsCollection)
	if err != nil {
		return reviews.Review{}, err
	}

	rv := in.Materialize(id, stamp(r.now))
	_, err = r.coll.InsertOne(ctx, reviewDoc{
		ID:           rv.ID,
		CustomerName: rv.CustomerName,
		PetName:      rv.PetName,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		CreatedAt:    rv.CreatedAt,
	})
	if err != nil {
		return reviews.Review{}, fmt.Errorf("mongo: insert review: %w", err)
	}
	return rv, nil
}

func (r *ReviewsRepo) List(ctx context.Context) ([]reviews.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("mongo: list reviews: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]reviews.Review, 0)
	for cur.Next(ctx) {
		var d reviewDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("mongo: decode review: %w", err)
		}
		out = append(out, reviews.Review{
			ID:           d.ID,
			CustomerName: d.CustomerName,
			PetName:      d.PetName,
			Rating:       d.Rating,
			Comment:      d.Comment,
			CreatedAt:    d.CreatedAt,
		})
	}
	return out, cur.Err()
}
