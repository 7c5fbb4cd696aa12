package handler

import (
	"net/http"

	"foodpool-be/internal/middleware"
	"foodpool-be/internal/profile"
	"foodpool-be/internal/utils"
)

const partialKitchenMsg = "location saved, but the address could not be looked up"

type updateProfileRequest struct {
	FullName    *string  `json:"full_name" validate:"omitempty,max=100"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,max=20"`
	Address     *string  `json:"address" validate:"omitempty,max=300"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	p, err := h.Profiles.Get(r.Context(), me.UserID)
	if err != nil {
		fail(w, r, err, middleware.LandingPath(me.Role))
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	var req updateProfileRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	p, err := h.Profiles.Update(r.Context(), me.UserID, profile.UpdateInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		fail(w, r, err, middleware.LandingPath(me.Role))
		return
	}
	utils.WriteJSONMessage(w, http.StatusOK, "profile updated", p)
}

// SetKitchenLocation stores the cook's pickup point. A failed address lookup
// still saves the point and is reported as a partial success.
func (h *Handler) SetKitchenLocation(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	var req coordinatesRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	res, err := h.Profiles.SetKitchenLocation(r.Context(), me.UserID, *req.Latitude, *req.Longitude)
	if err != nil {
		fail(w, r, err, middleware.LandingPath(me.Role))
		return
	}

	msg := "kitchen location saved"
	if res.Partial {
		msg = partialKitchenMsg
	}
	utils.WriteJSONMessage(w, http.StatusOK, msg, res)
}
