package handler

import (
	"net/http"

	"foodpool-be/internal/review"
	"foodpool-be/internal/utils"
)

type cookReviews struct {
	Summary *review.Summary `json:"summary"`
	Reviews []review.Review `json:"reviews"`
}

func (h *Handler) CustomerDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboards.Customer(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) CookDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Dashboards.Cook(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

func (h *Handler) CookEarnings(w http.ResponseWriter, r *http.Request) {
	e, err := h.Dashboards.Earnings(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) CookReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	me := caller(r)

	summary, err := h.Reviews.Summary(ctx, me.UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	reviews, err := h.Reviews.ListForCook(ctx, me.UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, cookReviews{Summary: summary, Reviews: nonNil(reviews)})
}
