package contacts

import (
	"context"
	"errors"
	"strings"

	"dogwalking/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Notifier interface {
	ContactCreated(ctx context.Context, c Contact) error
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
		log:      log.With(map[string]any{"module": "contacts"}),
	}
}

func (s *Service) Create(ctx context.Context, in NewContact) (Contact, error) {
	in = NewContact{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Message == "" {
		return Contact{}, ErrInvalidInput
	}

	c, err := s.repo.Create(ctx, in)
	if err != nil {
		s.log.Error("create contact failed", map[string]any{"error": err.Error()})
		return Contact{}, err
	}

	s.log.Info("contact created", map[string]any{"contact_id": c.ID})

	if s.notifier != nil {
		if err := s.notifier.ContactCreated(ctx, c); err != nil {
			s.log.Warn("contact notification failed", map[string]any{
				"contact_id": c.ID,
				"error":      err.Error(),
			})
		}
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Contact, error) {
	return s.repo.List(ctx)
}
