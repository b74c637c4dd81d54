package reviews

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	items []Review
}

func (r *testRepo) Create(ctx context.Context, in NewReview) (Review, error) {
	rv := in.Materialize(int64(len(r.items)+1), time.Now())
	r.items = append(r.items, rv)
	return rv, nil
}

func (r *testRepo) List(ctx context.Context) ([]Review, error) {
	return r.items, nil
}

func TestService_Create_PassesRatingThrough(t *testing.T) {
	svc := NewService(&testRepo{}, nil)

	rv, err := svc.Create(context.Background(), NewReview{CustomerName: " Sam ", PetName: "Max", Rating: 4, Comment: "Lovely"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rv.ID != 1 || rv.CustomerName != "Sam" || rv.Rating != 4 {
		t.Fatalf("unexpected review %#v", rv)
	}
}

func TestService_Create_RequiresComment(t *testing.T) {
	svc := NewService(&testRepo{}, nil)
	if _, err := svc.Create(context.Background(), NewReview{CustomerName: "Sam", PetName: "Max", Rating: 5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
