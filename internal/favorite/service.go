package favorite

import (
	"context"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	ListingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Toggle flips the pair and returns whether the listing is now saved.
func (s *service) Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	removed, err := s.repo.Remove(ctx, userID, listingID)
	if err != nil {
		return false, err
	}
	if removed {
		logger.FromCtx(ctx).Debug("favorite removed", zap.String("listing_id", listingID.String()))
		return false, nil
	}
	if err := s.repo.Add(ctx, userID, listingID); err != nil {
		return false, err
	}
	logger.FromCtx(ctx).Debug("favorite added", zap.String("listing_id", listingID.String()))
	return true, nil
}

func (s *service) IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, userID, listingID)
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *service) ListingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.ListingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
