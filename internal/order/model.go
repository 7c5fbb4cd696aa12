package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Active covers every status shown on the cook's "active" tab.
func (s Status) Active() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusConfirmed, StatusPreparing, StatusReady:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	if st.Active() || st.Terminal() {
		return st, true
	}
	return "", false
}

type Actor string

const (
	ActorCook     Actor = "cook"
	ActorCustomer Actor = "customer"
)

const PaymentCash = "cash"

// MaxQuantity caps a single order.
const MaxQuantity = 50

type Order struct {
	ID            uuid.UUID `json:"id"`
	ListingID     uuid.UUID `json:"listing_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CookID        uuid.UUID `json:"cook_id"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	Status        Status    `json:"status"`
	PaymentMethod *string   `json:"payment_method"`
	Rating        *int      `json:"rating"`
	Review        *string   `json:"review"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	ListingTitle string  `json:"listing_title"`
	ListingImage string  `json:"listing_image"`
	ListingPrice float64 `json:"listing_price"`
	CustomerName *string `json:"customer_name,omitempty"`
	CookName     *string `json:"cook_name,omitempty"`

	// NextStep is the forward status the cook can move to. Only set on
	// orders served to the cook.
	NextStep *Status `json:"next_step,omitempty"`
}

func (o *Order) setNextStep() {
	o.NextStep = nil
	if next, ok := NextCookStep(o.Status); ok {
		o.NextStep = &next
	}
}

// ActorFor reports which side of the order userID is on.
func (o *Order) ActorFor(userID uuid.UUID) (Actor, bool) {
	switch userID {
	case o.CookID:
		return ActorCook, true
	case o.CustomerID:
		return ActorCustomer, true
	}
	return "", false
}
