package memory

import (
	"context"

	"dogwalking/internal/domain/bookings"
)

type bookingRepo struct {
	c *collection[bookings.Booking]
}

func (r *bookingRepo) Create(ctx context.Context, in bookings.NewBooking) (bookings.Booking, error) {
	return r.c.insert(in.Materialize), nil
}

func (r *bookingRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	return r.c.list(), nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	b, ok := r.c.get(id)
	if !ok {
		return bookings.Booking{}, bookings.ErrNotFound
	}
	return b, nil
}
