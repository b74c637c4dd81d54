package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dogwalking/internal/domain/reviews"
)

type ReviewsRepo struct {
	db *sql.DB
}

func NewReviewsRepo(db *sql.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

func (r *ReviewsRepo) Create(ctx context.Context, in reviews.NewReview) (reviews.Review, error) {
	var rv reviews.Review
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (customer_name, pet_name, rating, comment)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, in.CustomerName, in.PetName, in.Rating, in.Comment).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return reviews.Review{}, fmt.Errorf("postgres: insert review: %w", err)
	}
	return in.Materialize(rv.ID, rv.CreatedAt), nil
}

func (r *ReviewsRepo) List(ctx context.Context) ([]reviews.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, pet_name, rating, comment, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]reviews.Review, 0)
	for rows.Next() {
		var rv reviews.Review
		if err := rows.Scan(&rv.ID, &rv.CustomerName, &rv.PetName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
