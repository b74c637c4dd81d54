package reviews

import (
	"context"
	"errors"
	"strings"

	"dogwalking/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "reviews"}),
	}
}

func (s *Service) Create(ctx context.Context, in NewReview) (Review, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.PetName = strings.TrimSpace(in.PetName)
	in.Comment = strings.TrimSpace(in.Comment)
	if in.CustomerName == "" || in.PetName == "" || in.Comment == "" {
		return Review{}, ErrInvalidInput
	}

	rv, err := s.repo.Create(ctx, in)
	if err != nil {
		s.log.Error("create review failed", map[string]any{"error": err.Error()})
		return Review{}, err
	}

	s.log.Info("review created", map[string]any{
		"review_id": rv.ID,
		"rating":    rv.Rating,
	})
	return rv, nil
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx)
}
