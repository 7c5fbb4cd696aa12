package comment

import "errors"

var (
	ErrEmptyContent    = errors.New("comment cannot be empty")
	ErrContentTooLong  = errors.New("comment is too long")
	ErrListingNotFound = errors.New("listing not found")
)
