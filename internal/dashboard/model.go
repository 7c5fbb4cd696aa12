package dashboard

import (
	"foodpool-be/internal/favorite"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/order"
	"foodpool-be/internal/review"
)

type CustomerStats struct {
	TotalOrders    int     `json:"total_orders"`
	TotalSpent     float64 `json:"total_spent"`
	FavoritesCount int     `json:"favorites_count"`
	CooksSupported int     `json:"cooks_supported"`
}

type Customer struct {
	Orders    []order.Order   `json:"orders"`
	Favorites []favorite.Item `json:"favorites"`
	Stats     CustomerStats   `json:"stats"`
}

type CookStats struct {
	TotalEarnings     float64 `json:"total_earnings"`
	TotalOrders       int     `json:"total_orders"`
	ActiveListings    int     `json:"active_listings"`
	ThisMonthEarnings float64 `json:"this_month_earnings"`
	Rating            float64 `json:"rating"`
	TotalReviews      int     `json:"total_reviews"`
}

type Cook struct {
	Listings []listing.Listing `json:"listings"`
	Orders   []order.Order     `json:"orders"`
	Reviews  []review.Review   `json:"reviews"`
	Stats    CookStats         `json:"stats"`
}

// DayAmount is one bar of the seven day earnings chart.
type DayAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Earnings struct {
	Today        float64       `json:"today"`
	Week         float64       `json:"week"`
	Month        float64       `json:"month"`
	AvgOrder     float64       `json:"avg_order"`
	TotalOrders  int           `json:"total_orders"`
	BestDay      string        `json:"best_day"`
	TopDish      string        `json:"top_dish"`
	RepeatRate   string        `json:"repeat_rate"`
	Chart        []DayAmount   `json:"chart"`
	Transactions []order.Order `json:"transactions"`
}
