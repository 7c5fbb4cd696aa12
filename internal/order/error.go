package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrListingNotFound   = errors.New("listing not found")
	ErrListingInactive   = errors.New("listing is not available")
	ErrOwnListing        = errors.New("cannot order your own listing")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 50")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("order status changed, reload and try again")
)
