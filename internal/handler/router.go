package handler

import (
	"net/http"

	"foodpool-be/internal/logger"
	"foodpool-be/internal/middleware"
	"foodpool-be/internal/session"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	CORSOrigin string
	// Limiter is optional; nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS(opts.CORSOrigin))
	r.Use(middleware.Authenticate(h.Sessions))
	// After Authenticate so signed-in callers are limited per user.
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/session", h.CurrentSession)
		})

		// Any signed-in role.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/feed", h.Feed)
			r.Get("/listings/{id}", h.GetListing)
			r.Get("/listings/{id}/comments", h.ListComments)
			r.Post("/listings/{id}/comments", h.PostComment)

			r.Post("/orders", h.PlaceOrder)
			r.Get("/orders/{id}", h.GetOrder)
			r.Post("/orders/{id}/cancel", h.CancelOrder)

			r.Get("/favorites", h.ListFavorites)
			r.Get("/favorites/ids", h.FavoriteIDs)
			r.Get("/favorites/{listingID}", h.GetFavorite)
			r.Post("/favorites/{listingID}/toggle", h.ToggleFavorite)

			r.Get("/profile", h.GetProfile)
			r.Patch("/profile", h.UpdateProfile)
			r.Put("/profile/kitchen-location", h.SetKitchenLocation)

			r.Get("/location", h.GetLocation)
			r.Put("/location", h.SetLocation)
			r.Post("/location/search", h.SearchLocation)
			r.Post("/location/current", h.SetCurrentLocation)
			r.Put("/location/distance", h.SetDistance)

			r.Post("/uploads/images", h.UploadImage)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(session.RoleCustomer))

			r.Get("/discover", h.Discover)
			r.Post("/orders/{id}/confirm-payment", h.ConfirmPayment)
			r.Post("/orders/{id}/review", h.ReviewOrder)

			r.Get("/customer/dashboard", h.CustomerDashboard)
			r.Get("/customer/orders", h.CustomerOrders)
			r.Get("/customer/stream", h.CustomerStream)
		})

		r.Route("/cook", func(r chi.Router) {
			r.Use(middleware.RequireRole(session.RoleCook))

			r.Get("/dashboard", h.CookDashboard)
			r.Get("/orders", h.CookOrders)
			r.Post("/orders/{id}/status", h.AdvanceOrder)
			r.Get("/earnings", h.CookEarnings)
			r.Get("/reviews", h.CookReviews)
			r.Get("/stream", h.CookStream)

			r.Post("/listings", h.CreateListing)
			r.Patch("/listings/{id}", h.UpdateListing)
			r.Delete("/listings/{id}", h.DeleteListing)
			r.Post("/listings/{id}/toggle", h.ToggleListing)
		})
	})

	return r
}
