package listing

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrForbidden       = errors.New("listing belongs to another cook")
	ErrKitchenLocation = errors.New("please set your kitchen address in your profile first")
	ErrInvalidImage    = errors.New("invalid image, upload a photo or provide a valid URL")
	ErrInvalidTitle    = errors.New("title is required")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidCategory = errors.New("unknown category")
	ErrNothingToUpdate = errors.New("no fields to update")
	ErrHasOrders       = errors.New("listing has orders, turn it off instead")
)
