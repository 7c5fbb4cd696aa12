package profile

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrIncompleteLocation = errors.New("latitude and longitude must be set together")
	ErrNothingToUpdate    = errors.New("nothing to update")
)
