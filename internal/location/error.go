package location

import "errors"

var (
	ErrNotFound           = errors.New("location preference not found")
	ErrInvalidCoordinates = errors.New("latitude or longitude out of range")
	ErrInvalidDistance    = errors.New("distance must be between 0 and 100 km or anywhere")
	ErrEmptyQuery         = errors.New("address search query is empty")
	ErrAddressNotFound    = errors.New("location not found, try a broader area (e.g. 'Kanpur')")
)
