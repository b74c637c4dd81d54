package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dogwalking/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Notifier avisa al negocio de una reserva nueva. Se define acá para no importar notify.
type Notifier interface {
	BookingCreated(ctx context.Context, b Booking) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	log      logger.Logger
}

func NewService(repo Repository, log logger.Logger, notifier Notifier) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With(map[string]any{"module": "bookings"}),
	}
}

func (s *Service) Create(ctx context.Context, in NewBooking) (Booking, error) {
	in = NewBooking{
		OwnerName:     strings.TrimSpace(in.OwnerName),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		DogName:       strings.TrimSpace(in.DogName),
		DogBreed:      strings.TrimSpace(in.DogBreed),
		ServiceType:   ServiceType(strings.TrimSpace(string(in.ServiceType))),
		PreferredDate: strings.TrimSpace(in.PreferredDate),
		Instructions:  strings.TrimSpace(in.Instructions),
	}
	if in.OwnerName == "" || in.Phone == "" || in.Email == "" || in.DogName == "" || in.PreferredDate == "" {
		return Booking{}, ErrInvalidInput
	}
	if !in.ServiceType.Valid() {
		return Booking{}, fmt.Errorf("%w: unknown service type %q (valid: %s)",
			ErrInvalidInput, in.ServiceType, strings.Join(PlanCodes(), ", "))
	}

	b, err := s.repo.Create(ctx, in)
	if err != nil {
		s.log.Error("create booking failed", map[string]any{"error": err.Error()})
		return Booking{}, err
	}

	s.log.Info("booking created", map[string]any{
		"booking_id":   b.ID,
		"service_type": string(b.ServiceType),
	})

	// El aviso es best-effort: la reserva ya quedó guardada.
	if s.notifier != nil {
		if err := s.notifier.BookingCreated(ctx, b); err != nil {
			s.log.Warn("booking notification failed", map[string]any{
				"booking_id": b.ID,
				"error":      err.Error(),
			})
		}
	}

	return b, nil
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Booking, error) {
	return s.repo.GetByID(ctx, id)
}
