package favorite

import "errors"

var ErrListingNotFound = errors.New("listing not found")
