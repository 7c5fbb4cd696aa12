package location

import (
	"context"
	"errors"
	"testing"

	"foodpool-be/internal/geocode"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, userID uuid.UUID) (*Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Preference), args.Error(1)
}

func (m *MockRepository) SaveCoordinates(ctx context.Context, p *Preference, defaultDistance Distance) error {
	args := m.Called(ctx, p, defaultDistance)
	return args.Error(0)
}

func (m *MockRepository) SaveDistance(ctx context.Context, userID uuid.UUID, d Distance) error {
	args := m.Called(ctx, userID, d)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string) (*geocode.Place, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocode.Place), args.Error(1)
}

var testOpts = Options{
	Fallback:        Coordinates{Latitude: 26.4677536423731, Longitude: 80.346298037978},
	FallbackAddress: "Kanpur",
	DefaultDistance: 5,
}

func floatPtr(f float64) *float64 { return &f }

func TestService_SearchAddress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Uses first hit", func(t *testing.T) {
		repo, geo := new(MockRepository), new(MockGeocoder)
		svc := NewService(repo, geo, testOpts)

		geo.On("Search", ctx, "Civil Lines").Return(&geocode.Place{Latitude: 26.47, Longitude: 80.35, DisplayName: "Civil Lines, Kanpur"}, nil)
		repo.On("SaveCoordinates", ctx, mock.MatchedBy(func(p *Preference) bool {
			return *p.Latitude == 26.47 && *p.Longitude == 80.35 && p.Address == "Civil Lines, Kanpur"
		}), Distance(5)).Return(nil)

		p, err := svc.SearchAddress(ctx, userID, " Civil Lines ")
		require.NoError(t, err)
		assert.Equal(t, "Civil Lines, Kanpur", p.Address)
		repo.AssertExpectations(t)
	})

	t.Run("No hit leaves state untouched", func(t *testing.T) {
		repo, geo := new(MockRepository), new(MockGeocoder)
		svc := NewService(repo, geo, testOpts)
		geo.On("Search", ctx, "zzzz").Return(nil, geocode.ErrNotFound)

		_, err := svc.SearchAddress(ctx, userID, "zzzz")
		assert.ErrorIs(t, err, ErrAddressNotFound)
		repo.AssertNotCalled(t, "SaveCoordinates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty query", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockGeocoder), testOpts)
		_, err := svc.SearchAddress(ctx, userID, "  ")
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("Upstream error surfaces", func(t *testing.T) {
		repo, geo := new(MockRepository), new(MockGeocoder)
		svc := NewService(repo, geo, testOpts)
		geo.On("Search", ctx, "Kanpur").Return(nil, geocode.ErrUpstream)

		_, err := svc.SearchAddress(ctx, userID, "Kanpur")
		assert.ErrorIs(t, err, geocode.ErrUpstream)
	})
}

func TestService_SetCurrentPosition(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := new(MockRepository)
	svc := NewService(repo, new(MockGeocoder), testOpts)

	repo.On("SaveCoordinates", ctx, mock.MatchedBy(func(p *Preference) bool {
		return p.Address == CurrentLocationLabel
	}), Distance(5)).Return(nil)

	p, err := svc.SetCurrentPosition(ctx, userID, Coordinates{Latitude: 12.9, Longitude: 77.6})
	require.NoError(t, err)
	assert.Equal(t, CurrentLocationLabel, p.Address)

	_, err = svc.SetCurrentPosition(ctx, userID, Coordinates{Latitude: 120, Longitude: 0})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestService_SetDistance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Anywhere", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGeocoder), testOpts)
		repo.On("SaveDistance", ctx, userID, DistanceAnywhere).Return(nil)
		repo.On("Get", ctx, userID).Return(&Preference{UserID: userID, Distance: DistanceAnywhere}, nil)

		p, err := svc.SetDistance(ctx, userID, DistanceAnywhere)
		require.NoError(t, err)
		assert.True(t, p.Distance.IsAnywhere())
	})

	t.Run("Invalid", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockGeocoder), testOpts)
		for _, d := range []Distance{0, -5, 101} {
			_, err := svc.SetDistance(ctx, userID, d)
			assert.ErrorIs(t, err, ErrInvalidDistance)
		}
	})
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Fallback when nothing stored", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGeocoder), testOpts)
		repo.On("Get", ctx, userID).Return(nil, ErrNotFound)

		r, err := svc.Resolve(ctx, userID, nil)
		require.NoError(t, err)
		assert.True(t, r.Fallback)
		assert.Equal(t, testOpts.Fallback, r.Coordinates)
		assert.Equal(t, Distance(5), r.Distance)
	})

	t.Run("Stored preference", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGeocoder), testOpts)
		repo.On("Get", ctx, userID).Return(&Preference{
			UserID: userID, Latitude: floatPtr(19.07), Longitude: floatPtr(72.87), Address: "Mumbai", Distance: 10,
		}, nil)

		r, err := svc.Resolve(ctx, userID, nil)
		require.NoError(t, err)
		assert.False(t, r.Fallback)
		assert.Equal(t, "Mumbai", r.Address)
		assert.Equal(t, 10000.0, r.Distance.RadiusMeters())
	})

	t.Run("Override wins but keeps stored distance", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGeocoder), testOpts)
		repo.On("Get", ctx, userID).Return(&Preference{UserID: userID, Distance: DistanceAnywhere}, nil)

		r, err := svc.Resolve(ctx, userID, &Coordinates{Latitude: 1, Longitude: 2})
		require.NoError(t, err)
		assert.Equal(t, Coordinates{Latitude: 1, Longitude: 2}, r.Coordinates)
		assert.Equal(t, -1.0, r.Distance.RadiusMeters())
	})

	t.Run("Anonymous gets fallback", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockGeocoder), testOpts)
		r, err := svc.Resolve(ctx, uuid.Nil, nil)
		require.NoError(t, err)
		assert.True(t, r.Fallback)
	})

	t.Run("Repository failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockGeocoder), testOpts)
		repo.On("Get", ctx, userID).Return(nil, errors.New("db down"))

		_, err := svc.Resolve(ctx, userID, nil)
		assert.Error(t, err)
	})
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5000.0, Distance(5).RadiusMeters())
	assert.Equal(t, -1.0, DistanceAnywhere.RadiusMeters())
	assert.True(t, Distance(1).Valid())
	assert.False(t, Distance(0).Valid())
}
