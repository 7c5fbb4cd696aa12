package handler

import (
	"fmt"
	"net/http"
	"strings"

	"foodpool-be/internal/listing"
	"foodpool-be/internal/location"
	"foodpool-be/internal/middleware"
	"foodpool-be/internal/utils"
)

type discoveryResponse struct {
	Location *location.Resolved     `json:"location"`
	Listings []listing.SearchResult `json:"listings"`
}

type listingDetail struct {
	*listing.Listing
	IsFavorite bool `json:"is_favorite"`
}

type createListingRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Quantity    string   `json:"quantity" validate:"max=100"`
	PickupTime  string   `json:"pickup_time" validate:"max=100"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	IsVeg       bool     `json:"is_veg"`
	Category    *string  `json:"category"`
	ImageURL    string   `json:"image_url" validate:"required"`
}

type updateListingRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
}

func categoryPtr(s *string) *listing.Category {
	if s == nil {
		return nil
	}
	c := listing.Category(*s)
	return &c
}

// Feed lists everything within the feed radius of the caller's location.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	me := caller(r)

	loc, err := h.Locations.Resolve(ctx, me.UserID, nil)
	if err != nil {
		fail(w, r, err, "")
		return
	}

	results, err := h.Listings.Feed(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, discoveryResponse{Location: loc, Listings: nonNil(results)})
}

// Discover searches by text and category. lat and lng override the stored
// location for this query only.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	me := caller(r)
	q := r.URL.Query()

	lat, err := queryFloat(r, "lat")
	if err != nil {
		fail(w, r, err, "")
		return
	}
	lng, err := queryFloat(r, "lng")
	if err != nil {
		fail(w, r, err, "")
		return
	}
	if (lat == nil) != (lng == nil) {
		fail(w, r, fmt.Errorf("%w: lat and lng must be given together", ErrBadRequest), "")
		return
	}

	var override *location.Coordinates
	if lat != nil {
		override = &location.Coordinates{Latitude: *lat, Longitude: *lng}
	}

	loc, err := h.Locations.Resolve(ctx, me.UserID, override)
	if err != nil {
		fail(w, r, err, "")
		return
	}

	results, err := h.Listings.Discover(ctx, listing.SearchParams{
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.Distance.RadiusMeters(),
		Query:        q.Get("q"),
	}, strings.TrimSpace(q.Get("category")))
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, discoveryResponse{Location: loc, Listings: nonNil(results)})
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}

	l, err := h.Listings.Get(ctx, id)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}

	fav, err := h.Favorites.IsFavorite(ctx, caller(r).UserID, id)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSON(w, http.StatusOK, listingDetail{Listing: l, IsFavorite: fav})
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	l, err := h.Listings.Create(r.Context(), caller(r).UserID, listing.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		PickupTime:  req.PickupTime,
		Price:       *req.Price,
		IsVeg:       req.IsVeg,
		Category:    categoryPtr(req.Category),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}
	utils.WriteJSONMessage(w, http.StatusCreated, "listing published", l)
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}
	var req updateListingRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	l, err := h.Listings.Update(r.Context(), caller(r).UserID, id, listing.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    categoryPtr(req.Category),
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) ToggleListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}

	l, err := h.Listings.ToggleActive(r.Context(), caller(r).UserID, id)
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l)
}

func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}

	if err := h.Listings.Delete(r.Context(), caller(r).UserID, id); err != nil {
		fail(w, r, err, middleware.CookLanding)
		return
	}
	utils.WriteJSONMessage(w, http.StatusOK, "listing deleted", nil)
}
