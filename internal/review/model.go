package review

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is the rating left on one completed order.
type Review struct {
	OrderID    uuid.UUID `json:"id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"review"`
	CreatedAt  time.Time `json:"created_at"`
	Pseudoname string    `json:"pseudoname"`
}

// Summary is the cook's aggregate kept on the profile row.
type Summary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}
