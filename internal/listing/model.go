package listing

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryVeg    Category = "Veg"
	CategoryNonVeg Category = "Non-Veg"
	CategorySnacks Category = "Snacks"
	CategorySweets Category = "Sweets"
)

var Categories = []Category{CategoryVeg, CategoryNonVeg, CategorySnacks, CategorySweets}

// FeedRadiusMeters bounds the home feed.
const FeedRadiusMeters = 50000

type Listing struct {
	ID          uuid.UUID `json:"id"`
	CookID      uuid.UUID `json:"cook_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	CookName    *string   `json:"cook_name,omitempty"`
	CookAvatar  *string   `json:"cook_avatar,omitempty"`
}

// SearchResult is one row of the search_food procedure.
type SearchResult struct {
	ID          uuid.UUID `json:"id"`
	CookID      uuid.UUID `json:"cook_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"image_url"`
	DistMeters  float64   `json:"dist_meters"`
	ChefName    *string   `json:"chef_name"`
	ChefAvatar  *string   `json:"chef_avatar"`
}

type SearchParams struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Query        string
}

type CreateInput struct {
	Title       string
	Description string
	Quantity    string
	PickupTime  string
	Price       float64
	IsVeg       bool
	Category    *Category
	ImageURL    string
}

// UpdateInput carries optional fields; nil means unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *Category
	ImageURL    *string
	IsActive    *bool
}

func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Price == nil &&
		in.Category == nil && in.ImageURL == nil && in.IsActive == nil
}
