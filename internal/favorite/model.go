package favorite

import (
	"time"

	"github.com/google/uuid"
)

// Item is a saved listing as shown on the customer dashboard.
type Item struct {
	ListingID uuid.UUID `json:"listing_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	CookName  *string   `json:"cook_name"`
	SavedAt   time.Time `json:"created_at"`
}
