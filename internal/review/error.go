package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotCompleted    = errors.New("only completed orders can be rated")
	ErrAlreadyRated    = errors.New("order already rated")
	ErrProfileNotFound = errors.New("cook profile not found")
)
