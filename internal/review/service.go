package review

import (
	"context"
	"strings"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Rate(ctx context.Context, customerID, orderID uuid.UUID, rating int, text string) error
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]Review, error)
	Summary(ctx context.Context, cookID uuid.UUID) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Rate(ctx context.Context, customerID, orderID uuid.UUID, rating int, text string) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	if err := s.repo.Rate(ctx, orderID, customerID, rating, strings.TrimSpace(text)); err != nil {
		logger.FromCtx(ctx).Info("rating rejected",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ListForCook returns reviews with text, newest first, each under its pseudoname.
func (s *service) ListForCook(ctx context.Context, cookID uuid.UUID) ([]Review, error) {
	reviews, err := s.repo.ListForCook(ctx, cookID)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].Pseudoname = Pseudoname(reviews[i].OrderID.String())
	}
	return reviews, nil
}

func (s *service) Summary(ctx context.Context, cookID uuid.UUID) (*Summary, error) {
	return s.repo.Summary(ctx, cookID)
}
