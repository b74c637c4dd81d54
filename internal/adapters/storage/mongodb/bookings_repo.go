package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dogwalking/internal/domain/bookings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingDoc struct {
	ID            int64     `bson:"_id"`
	OwnerName     string    `bson:"owner_name"`
	Phone         string    `bson:"phone"`
	Email         string    `bson:"email"`
	DogName       string    `bson:"dog_name"`
	DogBreed      string    `bson:"dog_breed,omitempty"`
	ServiceType   string    `bson:"service_type"`
	PreferredDate string    `bson:"preferred_date"`
	Instructions  string    `bson:"instructions,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (d bookingDoc) toDomain() bookings.Booking {
	return bookings.Booking{
		ID:            d.ID,
		OwnerName:     d.OwnerName,
		Phone:         d.Phone,
		Email:         d.Email,
		DogName:       d.DogName,
		DogBreed:      d.DogBreed,
		ServiceType:   bookings.ServiceType(d.ServiceType),
		PreferredDate: d.PreferredDate,
		Instructions:  d.Instructions,
		CreatedAt:     d.CreatedAt,
	}
}

type BookingsRepo struct {
	coll     *mongo.Collection
	counters *counters
	now      func() time.Time
}

func NewBookingsRepo(db *mongo.Database) *BookingsRepo {
	return &BookingsRepo{
		coll:     db.Collection(BookingsCollection),
		counters: newCounters(db),
		now:      time.Now,
	}
}

func (r *BookingsRepo) Create(ctx context.Context, in bookings.NewBooking) (bookings.Booking, error) {
	id, err := r.counters.next(ctx, BookingsCollection)
	if err != nil {
		return bookings.Booking{}, err
	}

	b := in.Materialize(id, stamp(r.now))
	doc := bookingDoc{
		ID:            b.ID,
		OwnerName:     b.OwnerName,
		Phone:         b.Phone,
		Email:         b.Email,
		DogName:       b.DogName,
		DogBreed:      b.DogBreed,
		ServiceType:   string(b.ServiceType),
		PreferredDate: b.PreferredDate,
		Instructions:  b.Instructions,
		CreatedAt:     b.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return bookings.Booking{}, fmt.Errorf("mongo: insert booking: %w", err)
	}
	return b, nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("mongo: list bookings: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]bookings.Booking, 0)
	for cur.Next(ctx) {
		var d bookingDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("mongo: decode booking: %w", err)
		}
		out = append(out, d.toDomain())
	}
	return out, cur.Err()
}

func (r *BookingsRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	var d bookingDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return bookings.Booking{}, bookings.ErrNotFound
		}
		return bookings.Booking{}, fmt.Errorf("mongo: get booking: %w", err)
	}
	return d.toDomain(), nil
}
