package bookings

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven todos los backends cuando el id no existe.
var ErrNotFound = errors.New("booking not found")

// Repository asigna id y created_at al crear; List devuelve lo más reciente primero.
type Repository interface {
	Create(ctx context.Context, in NewBooking) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	GetByID(ctx context.Context, id int64) (Booking, error)
}
