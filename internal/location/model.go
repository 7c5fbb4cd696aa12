package location

import (
	"time"

	"github.com/google/uuid"
)

// CurrentLocationLabel is the address label stored for device GPS fixes.
const CurrentLocationLabel = "Current Location"

// Distance is the discovery radius in kilometers. DistanceAnywhere disables
// the radius filter.
type Distance float64

const (
	DistanceAnywhere Distance = -1
	MaxDistance      Distance = 100
)

func (d Distance) IsAnywhere() bool {
	return d == DistanceAnywhere
}

func (d Distance) Valid() bool {
	return d == DistanceAnywhere || (d > 0 && d <= MaxDistance)
}

// RadiusMeters converts to the search_food radius argument, -1 meaning unbounded.
func (d Distance) RadiusMeters() float64 {
	if d.IsAnywhere() {
		return -1
	}
	return float64(d) * 1000
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

type Preference struct {
	UserID    uuid.UUID `json:"user_id"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Address   string    `json:"address"`
	Distance  Distance  `json:"distance_km"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Preference) Coordinates() (Coordinates, bool) {
	if p == nil || p.Latitude == nil || p.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *p.Latitude, Longitude: *p.Longitude}, true
}

// Resolved is the location a listing query runs against.
type Resolved struct {
	Coordinates
	Address  string   `json:"address"`
	Distance Distance `json:"distance_km"`
	Fallback bool     `json:"fallback"`
}
