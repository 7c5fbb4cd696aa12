package dashboard

import (
	"context"
	"fmt"
	"time"

	"foodpool-be/internal/favorite"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/order"
	"foodpool-be/internal/review"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderLister interface {
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]order.Order, error)
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]order.Order, error)
}

type FavoriteLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]favorite.Item, error)
}

type ListingLister interface {
	ListByCook(ctx context.Context, cookID uuid.UUID) ([]listing.Listing, error)
}

type ReviewReader interface {
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]review.Review, error)
	Summary(ctx context.Context, cookID uuid.UUID) (*review.Summary, error)
}

type Deps struct {
	Orders    OrderLister
	Favorites FavoriteLister
	Listings  ListingLister
	Reviews   ReviewReader
}

type Service interface {
	Customer(ctx context.Context, customerID uuid.UUID) (*Customer, error)
	Cook(ctx context.Context, cookID uuid.UUID) (*Cook, error)
	Earnings(ctx context.Context, cookID uuid.UUID) (*Earnings, error)
}

type service struct {
	deps Deps
	loc  *time.Location
	now  func() time.Time
}

func NewService(deps Deps, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{deps: deps, loc: loc, now: time.Now}
}

// Customer loads orders and favorites concurrently.
func (s *service) Customer(ctx context.Context, customerID uuid.UUID) (*Customer, error) {
	var (
		orders    []order.Order
		favorites []favorite.Item
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		if orders, err = s.deps.Orders.ListForCustomer(gctx, customerID); err != nil {
			return fmt.Errorf("dashboard: listing orders: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		var err error
		if favorites, err = s.deps.Favorites.ListForUser(gctx, customerID); err != nil {
			return fmt.Errorf("dashboard: listing favorites: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []order.Order{}
	}
	if favorites == nil {
		favorites = []favorite.Item{}
	}
	return &Customer{
		Orders:    orders,
		Favorites: favorites,
		Stats:     SummarizeCustomer(orders, len(favorites)),
	}, nil
}

func (s *service) Cook(ctx context.Context, cookID uuid.UUID) (*Cook, error) {
	listings, err := s.deps.Listings.ListByCook(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listing listings: %w", err)
	}
	all, err := s.deps.Orders.ListForCook(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listing orders: %w", err)
	}
	summary, err := s.deps.Reviews.Summary(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: reading rating: %w", err)
	}
	reviews, err := s.deps.Reviews.ListForCook(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listing reviews: %w", err)
	}

	orders := make([]order.Order, 0, len(all))
	for _, o := range all {
		if o.Status != order.StatusCancelled {
			orders = append(orders, o)
		}
	}
	if listings == nil {
		listings = []listing.Listing{}
	}
	if reviews == nil {
		reviews = []review.Review{}
	}
	return &Cook{
		Listings: listings,
		Orders:   orders,
		Reviews:  reviews,
		Stats:    SummarizeCook(listings, orders, *summary, s.now(), s.loc),
	}, nil
}

func (s *service) Earnings(ctx context.Context, cookID uuid.UUID) (*Earnings, error) {
	orders, err := s.deps.Orders.ListForCook(ctx, cookID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listing orders: %w", err)
	}
	e := ComputeEarnings(orders, s.now(), s.loc)
	return &e, nil
}
