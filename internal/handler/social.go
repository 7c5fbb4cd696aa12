package handler

import (
	"net/http"

	"foodpool-be/internal/utils"
)

type favoriteState struct {
	ListingID  string `json:"listing_id"`
	IsFavorite bool   `json:"is_favorite"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	items, err := h.Favorites.ListForUser(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) FavoriteIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Favorites.ListingIDs(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, ids)
}

func (h *Handler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "listingID")
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}

	fav, err := h.Favorites.IsFavorite(r.Context(), caller(r).UserID, id)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSON(w, http.StatusOK, favoriteState{ListingID: id.String(), IsFavorite: fav})
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "listingID")
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}

	fav, err := h.Favorites.Toggle(r.Context(), caller(r).UserID, id)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSON(w, http.StatusOK, favoriteState{ListingID: id.String(), IsFavorite: fav})
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}

	thread, err := h.Comments.List(r.Context(), id)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSON(w, http.StatusOK, thread)
}

// PostComment answers with the refreshed thread.
func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	var req commentRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	thread, err := h.Comments.Post(r.Context(), caller(r).UserID, id, req.Content)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, thread)
}
