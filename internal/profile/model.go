package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID            uuid.UUID `json:"id"`
	FullName      *string   `json:"full_name"`
	AvatarURL     *string   `json:"avatar_url"`
	PhoneNumber   *string   `json:"phone_number"`
	Address       *string   `json:"address"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	IsCook        bool      `json:"is_cook"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	HasKitchen    bool      `json:"has_kitchen_location"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateInput carries optional fields; nil keeps the stored value.
type UpdateInput struct {
	FullName    *string
	PhoneNumber *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
}

// KitchenUpdate is the outcome of saving a kitchen location. Partial is set
// when the coordinates were stored but no address could be derived.
type KitchenUpdate struct {
	Profile *Profile `json:"profile"`
	Partial bool     `json:"partial"`
}
