package handler

import (
	"fmt"
	"net/http"

	"foodpool-be/internal/order"
	"foodpool-be/internal/utils"
)

type placeOrderRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type reviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=1000"`
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, feedPath)
		return
	}
	listingID, ok := utils.ParseUUID(req.ListingID)
	if !ok {
		fail(w, r, fmt.Errorf("%w: listing_id must be a UUID", ErrBadRequest), feedPath)
		return
	}

	o, err := h.Orders.Place(r.Context(), caller(r).UserID, listingID, req.Quantity)
	if err != nil {
		fail(w, r, err, feedPath)
		return
	}
	utils.WriteJSONMessage(w, http.StatusCreated, "order placed", o)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}

	o, err := h.Orders.Get(r.Context(), me.UserID, id)
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}

	o, err := h.Orders.Cancel(r.Context(), me.UserID, id)
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	utils.WriteJSONMessage(w, http.StatusOK, "order cancelled", o)
}

// ConfirmPayment records cash payment for an accepted order.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}

	o, err := h.Orders.ConfirmPayment(r.Context(), me.UserID, id)
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	utils.WriteJSONMessage(w, http.StatusOK, "payment confirmed", o)
}

func (h *Handler) ReviewOrder(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	var req reviewRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	if err := h.Reviews.Rate(r.Context(), me.UserID, id, req.Rating, req.Review); err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	utils.WriteJSONMessage(w, http.StatusOK, "thanks for your review", nil)
}

func (h *Handler) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForCustomer(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNil(orders))
}

func (h *Handler) CookOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForCook(r.Context(), caller(r).UserID)
	if err != nil {
		fail(w, r, err, "")
		return
	}
	utils.WriteJSON(w, http.StatusOK, nonNil(orders))
}

// AdvanceOrder moves an order one step along the cook's side of the flow.
func (h *Handler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	id, err := pathID(r, "id")
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	var req statusRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}
	to, ok := order.ParseStatus(req.Status)
	if !ok {
		fail(w, r, fmt.Errorf("%w: unknown status %q", ErrBadRequest, req.Status), "")
		return
	}

	o, err := h.Orders.Advance(r.Context(), me.UserID, id, to)
	if err != nil {
		fail(w, r, err, ordersPath(me.Role))
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}
