package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"foodpool-be/internal/comment"
	"foodpool-be/internal/dashboard"
	"foodpool-be/internal/favorite"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/location"
	"foodpool-be/internal/metrics"
	"foodpool-be/internal/order"
	"foodpool-be/internal/profile"
	"foodpool-be/internal/realtime"
	"foodpool-be/internal/review"
	"foodpool-be/internal/session"
	"foodpool-be/internal/utils"

	"github.com/google/uuid"
)

// ImageUploader stores an uploaded image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// OrderStreamer serves the realtime order feed on an upgraded connection.
type OrderStreamer interface {
	Serve(w http.ResponseWriter, r *http.Request, owner uuid.UUID, side realtime.Side, fetch realtime.Fetcher)
}

// Deps lists everything the HTTP surface talks to.
type Deps struct {
	Sessions   session.Service
	Listings   listing.Service
	Orders     order.Service
	Locations  location.Service
	Profiles   profile.Service
	Favorites  favorite.Service
	Comments   comment.Service
	Reviews    review.Service
	Dashboards dashboard.Service
	Images     ImageUploader
	Streams    OrderStreamer
	Metrics    *metrics.Registry

	TokenTTL     time.Duration
	SecureCookie bool
}

type Handler struct {
	Deps
}

func New(deps Deps) *Handler {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Default
	}
	return &Handler{Deps: deps}
}

// Health reports liveness. Metrics are only included for trusted internal
// callers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if utils.IsInternalRequest(r.Context()) {
		resp.Metrics = h.Metrics.Snapshot()
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status  string           `json:"status"`
	Metrics []metrics.Sample `json:"metrics,omitempty"`
}
