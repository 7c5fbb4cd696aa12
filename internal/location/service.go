package location

import (
	"context"
	"errors"
	"strings"

	"foodpool-be/internal/geocode"
	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Geocoder is the forward geocoding used by address search.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Place, error)
}

type Options struct {
	// Fallback is used when a user has never stored a location.
	Fallback        Coordinates
	FallbackAddress string
	DefaultDistance Distance
}

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Preference, error)
	Set(ctx context.Context, userID uuid.UUID, c Coordinates, address string) (*Preference, error)
	SearchAddress(ctx context.Context, userID uuid.UUID, query string) (*Preference, error)
	SetCurrentPosition(ctx context.Context, userID uuid.UUID, c Coordinates) (*Preference, error)
	SetDistance(ctx context.Context, userID uuid.UUID, d Distance) (*Preference, error)
	Resolve(ctx context.Context, userID uuid.UUID, override *Coordinates) (*Resolved, error)
}

type service struct {
	repo     Repository
	geocoder Geocoder
	opts     Options
}

func NewService(repo Repository, geocoder Geocoder, opts Options) Service {
	if !opts.DefaultDistance.Valid() {
		opts.DefaultDistance = 5
	}
	if opts.FallbackAddress == "" {
		opts.FallbackAddress = "Kanpur"
	}
	return &service{repo: repo, geocoder: geocoder, opts: opts}
}

// Get returns the stored preference, or an empty one carrying the default
// distance when nothing is stored yet.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Preference, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &Preference{UserID: userID, Distance: s.opts.DefaultDistance}, nil
	}
	return p, err
}

func (s *service) Set(ctx context.Context, userID uuid.UUID, c Coordinates, address string) (*Preference, error) {
	if !c.Valid() {
		return nil, ErrInvalidCoordinates
	}

	p := &Preference{
		UserID:    userID,
		Latitude:  &c.Latitude,
		Longitude: &c.Longitude,
		Address:   strings.TrimSpace(address),
	}
	if err := s.repo.SaveCoordinates(ctx, p, s.opts.DefaultDistance); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) SearchAddress(ctx context.Context, userID uuid.UUID, query string) (*Preference, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "SearchAddress"))

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	place, err := s.geocoder.Search(ctx, query)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			log.Info("address not found", zap.String("query", query))
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	return s.Set(ctx, userID, Coordinates{Latitude: place.Latitude, Longitude: place.Longitude}, place.DisplayName)
}

func (s *service) SetCurrentPosition(ctx context.Context, userID uuid.UUID, c Coordinates) (*Preference, error) {
	return s.Set(ctx, userID, c, CurrentLocationLabel)
}

func (s *service) SetDistance(ctx context.Context, userID uuid.UUID, d Distance) (*Preference, error) {
	if !d.Valid() {
		return nil, ErrInvalidDistance
	}
	if err := s.repo.SaveDistance(ctx, userID, d); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Resolve picks the coordinate a listing query uses: an explicit override,
// then the stored preference, then the configured fallback.
func (s *service) Resolve(ctx context.Context, userID uuid.UUID, override *Coordinates) (*Resolved, error) {
	if override != nil && !override.Valid() {
		return nil, ErrInvalidCoordinates
	}

	var pref *Preference
	if userID != uuid.Nil {
		p, err := s.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		pref = p
	}

	distance := s.opts.DefaultDistance
	if pref != nil && pref.Distance.Valid() {
		distance = pref.Distance
	}

	if override != nil {
		return &Resolved{Coordinates: *override, Distance: distance}, nil
	}

	if c, ok := pref.Coordinates(); ok {
		return &Resolved{Coordinates: c, Address: pref.Address, Distance: distance}, nil
	}

	return &Resolved{
		Coordinates: s.opts.Fallback,
		Address:     s.opts.FallbackAddress,
		Distance:    distance,
		Fallback:    true,
	}, nil
}
