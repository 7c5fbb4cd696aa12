package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodpool-be/internal/comment"
	"foodpool-be/internal/config"
	"foodpool-be/internal/dashboard"
	"foodpool-be/internal/db"
	"foodpool-be/internal/favorite"
	"foodpool-be/internal/geocode"
	"foodpool-be/internal/handler"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/location"
	"foodpool-be/internal/logger"
	"foodpool-be/internal/metrics"
	"foodpool-be/internal/middleware"
	"foodpool-be/internal/order"
	"foodpool-be/internal/profile"
	"foodpool-be/internal/realtime"
	"foodpool-be/internal/review"
	"foodpool-be/internal/session"
	"foodpool-be/internal/storage"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database := db.InitDB(cfg)
	defer database.Close()

	bucketClient, err := gcs.NewClient(ctx)
	if err != nil {
		log.Fatal("failed to create storage client", zap.Error(err))
	}
	defer bucketClient.Close()

	hub := realtime.NewHub(metrics.Default)
	listener, err := realtime.NewListener(db.DSN(cfg))
	if err != nil {
		log.Fatal("failed to listen for order changes", zap.Error(err))
	}
	defer listener.Close()
	go realtime.Run(ctx, listener, hub)

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.Cleanup(ctx)

	h := buildHandler(cfg, database,
		storage.NewGCS(bucketClient, cfg.ImageBucket),
		realtime.NewStreamer(hub, cfg.CORSOrigin),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           setupRouter(h, cfg, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildHandler wires repositories and services over database.
func buildHandler(cfg *config.Config, database *sql.DB, objects storage.ObjectWriter, streams handler.OrderStreamer) *handler.Handler {
	geocoder := geocode.NewNominatimClient(cfg.NominatimURL, cfg.NominatimUserAgent)

	tokens := session.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	sessionSvc := session.NewService(session.NewRepository(database), tokens)
	profileSvc := profile.NewService(profile.NewRepository(database), geocoder)
	listingSvc := listing.NewService(listing.NewRepository(database), profileSvc)
	orderSvc := order.NewService(order.NewRepository(database), listingSvc)
	locationSvc := location.NewService(location.NewRepository(database), geocoder, location.Options{
		Fallback:        location.Coordinates{Latitude: cfg.FallbackLat, Longitude: cfg.FallbackLng},
		FallbackAddress: cfg.FallbackAddress,
		DefaultDistance: location.Distance(cfg.DefaultDistanceKM),
	})
	favoriteSvc := favorite.NewService(favorite.NewRepository(database))
	reviewSvc := review.NewService(review.NewRepository(database))

	dashboardSvc := dashboard.NewService(dashboard.Deps{
		Orders:    orderSvc,
		Favorites: favoriteSvc,
		Listings:  listingSvc,
		Reviews:   reviewSvc,
	}, cfg.Location())

	return handler.New(handler.Deps{
		Sessions:   sessionSvc,
		Listings:   listingSvc,
		Orders:     orderSvc,
		Locations:  locationSvc,
		Profiles:   profileSvc,
		Favorites:  favoriteSvc,
		Comments:   comment.NewService(comment.NewRepository(database)),
		Reviews:    reviewSvc,
		Dashboards: dashboardSvc,
		Images:     storage.NewImageService(objects),
		Streams:    streams,
		Metrics:    metrics.Default,
		// Cookie lifetime follows the issuer, which defaults an unset TTL.
		TokenTTL:     tokens.TTL(),
		SecureCookie: cfg.AppEnv == "production",
	})
}

func setupRouter(h *handler.Handler, cfg *config.Config, limiter *middleware.RateLimiter) http.Handler {
	return handler.NewRouter(h, handler.RouterOptions{
		CORSOrigin: cfg.CORSOrigin,
		Limiter:    limiter,
	})
}
