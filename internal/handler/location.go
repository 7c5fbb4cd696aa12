package handler

import (
	"net/http"

	"foodpool-be/internal/location"
	"foodpool-be/internal/utils"
)

type coordinatesRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func (c coordinatesRequest) coordinates() location.Coordinates {
	return location.Coordinates{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

type setLocationRequest struct {
	coordinatesRequest
	Address string `json:"address" validate:"max=300"`
}

type searchLocationRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

type distanceRequest struct {
	DistanceKM *float64 `json:"distance_km" validate:"required"`
}

// GetLocation reports the location listings are currently searched from,
// including whether the fallback is in use.
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.Locations.Resolve(r.Context(), caller(r).UserID, nil)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, loc)
}

func (h *Handler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req setLocationRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	pref, err := h.Locations.Set(r.Context(), caller(r).UserID, req.coordinates(), req.Address)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, pref)
}

func (h *Handler) SearchLocation(w http.ResponseWriter, r *http.Request) {
	var req searchLocationRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	pref, err := h.Locations.SearchAddress(r.Context(), caller(r).UserID, req.Query)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, pref)
}

// SetCurrentLocation stores a device GPS fix.
func (h *Handler) SetCurrentLocation(w http.ResponseWriter, r *http.Request) {
	var req coordinatesRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	pref, err := h.Locations.SetCurrentPosition(r.Context(), caller(r).UserID, req.coordinates())
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, pref)
}

func (h *Handler) SetDistance(w http.ResponseWriter, r *http.Request) {
	var req distanceRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	pref, err := h.Locations.SetDistance(r.Context(), caller(r).UserID, location.Distance(*req.DistanceKM))
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, pref)
}
