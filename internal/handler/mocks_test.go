package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"foodpool-be/internal/dashboard"
	"foodpool-be/internal/favorite"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/location"
	"foodpool-be/internal/order"
	"foodpool-be/internal/profile"
	"foodpool-be/internal/realtime"
	"foodpool-be/internal/review"
	"foodpool-be/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Signup(ctx context.Context, in session.SignupInput) (string, *session.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*session.Session), args.Error(2)
}

func (m *MockSessions) Login(ctx context.Context, email, password string) (string, *session.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*session.Session), args.Error(2)
}

func (m *MockSessions) Resolve(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

type MockListings struct {
	mock.Mock
}

func (m *MockListings) Discover(ctx context.Context, p listing.SearchParams, category string) ([]listing.SearchResult, error) {
	args := m.Called(ctx, p, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.SearchResult), args.Error(1)
}

func (m *MockListings) Feed(ctx context.Context, lat, lng float64) ([]listing.SearchResult, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.SearchResult), args.Error(1)
}

func (m *MockListings) Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListings) ListByCook(ctx context.Context, cookID uuid.UUID) ([]listing.Listing, error) {
	args := m.Called(ctx, cookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.Listing), args.Error(1)
}

func (m *MockListings) Create(ctx context.Context, cookID uuid.UUID, in listing.CreateInput) (*listing.Listing, error) {
	args := m.Called(ctx, cookID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListings) Update(ctx context.Context, cookID, id uuid.UUID, in listing.UpdateInput) (*listing.Listing, error) {
	args := m.Called(ctx, cookID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListings) ToggleActive(ctx context.Context, cookID, id uuid.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, cookID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListings) Delete(ctx context.Context, cookID, id uuid.UUID) error {
	args := m.Called(ctx, cookID, id)
	return args.Error(0)
}

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) one(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrders) many(args mock.Arguments) ([]order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrders) Place(ctx context.Context, customerID, listingID uuid.UUID, quantity int) (*order.Order, error) {
	return m.one(m.Called(ctx, customerID, listingID, quantity))
}

func (m *MockOrders) Get(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	return m.one(m.Called(ctx, userID, orderID))
}

func (m *MockOrders) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error) {
	return m.many(m.Called(ctx, customerID))
}

func (m *MockOrders) ListForCook(ctx context.Context, cookID uuid.UUID) ([]order.Order, error) {
	return m.many(m.Called(ctx, cookID))
}

func (m *MockOrders) Advance(ctx context.Context, cookID, orderID uuid.UUID, to order.Status) (*order.Order, error) {
	return m.one(m.Called(ctx, cookID, orderID, to))
}

func (m *MockOrders) ConfirmPayment(ctx context.Context, customerID, orderID uuid.UUID) (*order.Order, error) {
	return m.one(m.Called(ctx, customerID, orderID))
}

func (m *MockOrders) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	return m.one(m.Called(ctx, userID, orderID))
}

type MockLocations struct {
	mock.Mock
}

func (m *MockLocations) pref(args mock.Arguments) (*location.Preference, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Preference), args.Error(1)
}

func (m *MockLocations) Get(ctx context.Context, userID uuid.UUID) (*location.Preference, error) {
	return m.pref(m.Called(ctx, userID))
}

func (m *MockLocations) Set(ctx context.Context, userID uuid.UUID, c location.Coordinates, address string) (*location.Preference, error) {
	return m.pref(m.Called(ctx, userID, c, address))
}

func (m *MockLocations) SearchAddress(ctx context.Context, userID uuid.UUID, query string) (*location.Preference, error) {
	return m.pref(m.Called(ctx, userID, query))
}

func (m *MockLocations) SetCurrentPosition(ctx context.Context, userID uuid.UUID, c location.Coordinates) (*location.Preference, error) {
	return m.pref(m.Called(ctx, userID, c))
}

func (m *MockLocations) SetDistance(ctx context.Context, userID uuid.UUID, d location.Distance) (*location.Preference, error) {
	return m.pref(m.Called(ctx, userID, d))
}

func (m *MockLocations) Resolve(ctx context.Context, userID uuid.UUID, override *location.Coordinates) (*location.Resolved, error) {
	args := m.Called(ctx, userID, override)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Resolved), args.Error(1)
}

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfiles) Update(ctx context.Context, id uuid.UUID, in profile.UpdateInput) (*profile.Profile, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfiles) SetKitchenLocation(ctx context.Context, id uuid.UUID, lat, lng float64) (*profile.KitchenUpdate, error) {
	args := m.Called(ctx, id, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.KitchenUpdate), args.Error(1)
}

func (m *MockProfiles) HasKitchenLocation(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockFavorites struct {
	mock.Mock
}

func (m *MockFavorites) Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavorites) IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavorites) ListForUser(ctx context.Context, userID uuid.UUID) ([]favorite.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]favorite.Item), args.Error(1)
}

func (m *MockFavorites) ListingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockReviews struct {
	mock.Mock
}

func (m *MockReviews) Rate(ctx context.Context, customerID, orderID uuid.UUID, rating int, text string) error {
	args := m.Called(ctx, customerID, orderID, rating, text)
	return args.Error(0)
}

func (m *MockReviews) ListForCook(ctx context.Context, cookID uuid.UUID) ([]review.Review, error) {
	args := m.Called(ctx, cookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *MockReviews) Summary(ctx context.Context, cookID uuid.UUID) (*review.Summary, error) {
	args := m.Called(ctx, cookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Summary), args.Error(1)
}

type MockDashboards struct {
	mock.Mock
}

func (m *MockDashboards) Customer(ctx context.Context, customerID uuid.UUID) (*dashboard.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Customer), args.Error(1)
}

func (m *MockDashboards) Cook(ctx context.Context, cookID uuid.UUID) (*dashboard.Cook, error) {
	args := m.Called(ctx, cookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Cook), args.Error(1)
}

func (m *MockDashboards) Earnings(ctx context.Context, cookID uuid.UUID) (*dashboard.Earnings, error) {
	args := m.Called(ctx, cookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Earnings), args.Error(1)
}

type MockImages struct {
	mock.Mock
}

func (m *MockImages) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

type MockStreams struct {
	mock.Mock
}

func (m *MockStreams) Serve(w http.ResponseWriter, r *http.Request, owner uuid.UUID, side realtime.Side, fetch realtime.Fetcher) {
	m.Called(owner, side)
	data, err := fetch(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if orders, ok := data.([]order.Order); ok {
		w.Header().Set("X-Orders", strconv.Itoa(len(orders)))
	}
	w.WriteHeader(http.StatusOK)
}
