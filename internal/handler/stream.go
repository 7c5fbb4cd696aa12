package handler

import (
	"context"
	"net/http"

	"foodpool-be/internal/realtime"
)

// CustomerStream pushes the caller's order list on every change.
func (h *Handler) CustomerStream(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	h.Streams.Serve(w, r, me.UserID, realtime.SideCustomer, func(ctx context.Context) (any, error) {
		orders, err := h.Orders.ListForCustomer(ctx, me.UserID)
		return nonNil(orders), err
	})
}

func (h *Handler) CookStream(w http.ResponseWriter, r *http.Request) {
	me := caller(r)
	h.Streams.Serve(w, r, me.UserID, realtime.SideCook, func(ctx context.Context) (any, error) {
		orders, err := h.Orders.ListForCook(ctx, me.UserID)
		return nonNil(orders), err
	})
}
