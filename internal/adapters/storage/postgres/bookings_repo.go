package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dogwalking/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

const bookingColumns = `
	id, owner_name, phone, email,
	dog_name, dog_breed,
	service_type, preferred_date, instructions,
	created_at`

func (r *BookingsRepo) Create(ctx context.Context, in bookings.NewBooking) (bookings.Booking, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings (
			owner_name, phone, email,
			dog_name, dog_breed,
			service_type, preferred_date, instructions
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at
	`,
		in.OwnerName,
		in.Phone,
		in.Email,
		in.DogName,
		nullIfEmpty(in.DogBreed),
		string(in.ServiceType),
		in.PreferredDate,
		nullIfEmpty(in.Instructions),
	)

	var b bookings.Booking
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return bookings.Booking{}, fmt.Errorf("postgres: insert booking: %w", err)
	}
	return in.Materialize(b.ID, b.CreatedAt), nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookingColumns+`
		FROM bookings
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list bookings: %w", err)
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingsRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bookings.Booking{}, bookings.ErrNotFound
		}
		return bookings.Booking{}, err
	}
	return b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (bookings.Booking, error) {
	var (
		b            bookings.Booking
		serviceType  string
		dogBreed     sql.NullString
		instructions sql.NullString
	)
	if err := s.Scan(
		&b.ID,
		&b.OwnerName,
		&b.Phone,
		&b.Email,
		&b.DogName,
		&dogBreed,
		&serviceType,
		&b.PreferredDate,
		&instructions,
		&b.CreatedAt,
	); err != nil {
		return bookings.Booking{}, err
	}
	b.ServiceType = bookings.ServiceType(serviceType)
	b.DogBreed = dogBreed.String
	b.Instructions = instructions.String
	return b, nil
}
