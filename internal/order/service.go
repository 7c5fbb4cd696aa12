package order

import (
	"context"
	"errors"

	"foodpool-be/internal/listing"
	"foodpool-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingLookup resolves the listing an order is placed against.
type ListingLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type Service interface {
	Place(ctx context.Context, customerID, listingID uuid.UUID, quantity int) (*Order, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error)
	ListForCook(ctx context.Context, cookID uuid.UUID) ([]Order, error)
	Advance(ctx context.Context, cookID, orderID uuid.UUID, to Status) (*Order, error)
	ConfirmPayment(ctx context.Context, customerID, orderID uuid.UUID) (*Order, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*Order, error)
}

type service struct {
	repo     Repository
	listings ListingLookup
}

func NewService(repo Repository, listings ListingLookup) Service {
	return &service{repo: repo, listings: listings}
}

func (s *service) Place(ctx context.Context, customerID, listingID uuid.UUID, quantity int) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "PlaceOrder"),
		zap.String("listing_id", listingID.String()),
	)

	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidQuantity
	}

	l, err := s.listings.Get(ctx, listingID)
	if err != nil {
		if errors.Is(err, listing.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !l.IsActive {
		return nil, ErrListingInactive
	}
	if l.CookID == customerID {
		return nil, ErrOwnListing
	}

	o := &Order{
		ListingID:    l.ID,
		CustomerID:   customerID,
		CookID:       l.CookID,
		Quantity:     quantity,
		TotalPrice:   l.Price * float64(quantity),
		Status:       StatusPending,
		ListingTitle: l.Title,
		ListingImage: l.ImageURL,
		ListingPrice: l.Price,
		CookName:     l.CookName,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.Float64("total", o.TotalPrice),
	)
	return o, nil
}

// Get returns the order only to its customer or cook.
func (s *service) Get(ctx context.Context, userID, orderID uuid.UUID) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if _, ok := o.ActorFor(userID); !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Order, error) {
	return s.repo.ListForCustomer(ctx, customerID)
}

func (s *service) ListForCook(ctx context.Context, cookID uuid.UUID) ([]Order, error) {
	orders, err := s.repo.ListForCook(ctx, cookID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].setNextStep()
	}
	return orders, nil
}

func (s *service) Advance(ctx context.Context, cookID, orderID uuid.UUID, to Status) (*Order, error) {
	o, err := s.transition(ctx, cookID, orderID, ActorCook, to, nil)
	if err != nil {
		return nil, err
	}
	o.setNextStep()
	return o, nil
}

func (s *service) ConfirmPayment(ctx context.Context, customerID, orderID uuid.UUID) (*Order, error) {
	method := PaymentCash
	return s.transition(ctx, customerID, orderID, ActorCustomer, StatusConfirmed, &method)
}

func (s *service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*Order, error) {
	o, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	actor, _ := o.ActorFor(userID)
	return s.apply(ctx, o, actor, StatusCancelled, nil)
}

func (s *service) transition(
	ctx context.Context,
	userID, orderID uuid.UUID,
	actor Actor,
	to Status,
	paymentMethod *string,
) (*Order, error) {
	o, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if got, _ := o.ActorFor(userID); got != actor {
		return nil, ErrOrderNotFound
	}
	return s.apply(ctx, o, actor, to, paymentMethod)
}

func (s *service) apply(ctx context.Context, o *Order, actor Actor, to Status, paymentMethod *string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "TransitionOrder"),
		zap.String("order_id", o.ID.String()),
		zap.String("from", string(o.Status)),
		zap.String("to", string(to)),
	)

	if err := CanTransition(o.Status, to, actor); err != nil {
		log.Info("transition rejected", zap.Error(err))
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, o.Status, to, paymentMethod); err != nil {
		log.Warn("status update failed", zap.Error(err))
		return nil, err
	}

	o.Status = to
	if paymentMethod != nil {
		o.PaymentMethod = paymentMethod
	}
	log.Info("order status updated")
	return o, nil
}
