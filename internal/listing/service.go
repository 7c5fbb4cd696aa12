package listing

import (
	"context"
	"strings"

	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KitchenLocator reports whether a cook has pinned a kitchen location.
type KitchenLocator interface {
	HasKitchenLocation(ctx context.Context, cookID uuid.UUID) (bool, error)
}

type Service interface {
	Discover(ctx context.Context, p SearchParams, category string) ([]SearchResult, error)
	Feed(ctx context.Context, lat, lng float64) ([]SearchResult, error)
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListByCook(ctx context.Context, cookID uuid.UUID) ([]Listing, error)
	Create(ctx context.Context, cookID uuid.UUID, in CreateInput) (*Listing, error)
	Update(ctx context.Context, cookID, id uuid.UUID, in UpdateInput) (*Listing, error)
	ToggleActive(ctx context.Context, cookID, id uuid.UUID) (*Listing, error)
	Delete(ctx context.Context, cookID, id uuid.UUID) error
}

type service struct {
	repo    Repository
	kitchen KitchenLocator
}

func NewService(repo Repository, kitchen KitchenLocator) Service {
	return &service{repo: repo, kitchen: kitchen}
}

func (s *service) Discover(ctx context.Context, p SearchParams, category string) ([]SearchResult, error) {
	p.Query = strings.TrimSpace(p.Query)
	results, err := s.repo.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(results, category), nil
}

func (s *service) Feed(ctx context.Context, lat, lng float64) ([]SearchResult, error) {
	return s.repo.Search(ctx, SearchParams{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: FeedRadiusMeters,
	})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByCook(ctx context.Context, cookID uuid.UUID) ([]Listing, error) {
	return s.repo.ListByCook(ctx, cookID)
}

func (s *service) Create(ctx context.Context, cookID uuid.UUID, in CreateInput) (*Listing, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "CreateListing"))

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if err := ValidateImageURL(in.ImageURL); err != nil {
		return nil, err
	}

	category := CategoryFor(in.IsVeg)
	if in.Category != nil {
		c, ok := ParseCategory(string(*in.Category))
		if !ok {
			return nil, ErrInvalidCategory
		}
		category = c
	}

	ok, err := s.kitchen.HasKitchenLocation(ctx, cookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrKitchenLocation
	}

	l := &Listing{
		CookID:      cookID,
		Title:       title,
		Description: ComposeDescription(in.Description, in.Quantity, in.PickupTime),
		Price:       in.Price,
		Category:    category,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	log.Info("listing created", zap.String("listing_id", l.ID.String()))
	return l, nil
}

func (s *service) Update(ctx context.Context, cookID, id uuid.UUID, in UpdateInput) (*Listing, error) {
	if in.Empty() {
		return nil, ErrNothingToUpdate
	}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, ErrInvalidTitle
		}
		in.Title = &t
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if in.Category != nil {
		c, ok := ParseCategory(string(*in.Category))
		if !ok {
			return nil, ErrInvalidCategory
		}
		in.Category = &c
	}
	if in.ImageURL != nil {
		if err := ValidateImageURL(*in.ImageURL); err != nil {
			return nil, err
		}
	}

	if _, err := s.owned(ctx, cookID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, cookID, in)
}

func (s *service) ToggleActive(ctx context.Context, cookID, id uuid.UUID) (*Listing, error) {
	l, err := s.owned(ctx, cookID, id)
	if err != nil {
		return nil, err
	}
	active := !l.IsActive
	return s.repo.Update(ctx, id, cookID, UpdateInput{IsActive: &active})
}

func (s *service) Delete(ctx context.Context, cookID, id uuid.UUID) error {
	if _, err := s.owned(ctx, cookID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, cookID)
}

func (s *service) owned(ctx context.Context, cookID, id uuid.UUID) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.CookID != cookID {
		logger.FromCtx(ctx).Warn("listing ownership mismatch",
			zap.String("listing_id", id.String()))
		return nil, ErrForbidden
	}
	return l, nil
}
