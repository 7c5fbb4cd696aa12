package profile

import (
	"context"
	"strings"

	"foodpool-be/internal/geocode"
	"foodpool-be/internal/location"
	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReverseGeocoder turns the kitchen coordinates into an address label.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (*geocode.Place, error)
}

type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Profile, error)
	SetKitchenLocation(ctx context.Context, id uuid.UUID, lat, lng float64) (*KitchenUpdate, error)
	HasKitchenLocation(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo     Repository
	geocoder ReverseGeocoder
}

func NewService(repo Repository, geocoder ReverseGeocoder) Service {
	return &service{repo: repo, geocoder: geocoder}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Profile, error) {
	if in == (UpdateInput{}) {
		return nil, ErrNothingToUpdate
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, ErrIncompleteLocation
	}
	if in.Latitude != nil && !(location.Coordinates{Latitude: *in.Latitude, Longitude: *in.Longitude}).Valid() {
		return nil, ErrInvalidCoordinates
	}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		in.FullName = &name
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// SetKitchenLocation saves the point first; a failed reverse lookup only
// leaves the address untouched.
func (s *service) SetKitchenLocation(ctx context.Context, id uuid.UUID, lat, lng float64) (*KitchenUpdate, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "SetKitchenLocation"))

	if !(location.Coordinates{Latitude: lat, Longitude: lng}).Valid() {
		return nil, ErrInvalidCoordinates
	}

	var address *string
	if place, err := s.geocoder.Reverse(ctx, lat, lng); err != nil {
		log.Warn("reverse geocoding failed", zap.Error(err))
	} else if short := geocode.ShortAddress(place.DisplayName); short != "" {
		address = &short
	}

	if err := s.repo.SetKitchenLocation(ctx, id, lat, lng, address); err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info("kitchen location saved", zap.Bool("has_address", address != nil))
	return &KitchenUpdate{Profile: p, Partial: address == nil}, nil
}

func (s *service) HasKitchenLocation(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.HasKitchenLocation(ctx, id)
}
