package handler

import (
	"errors"
	"net/http"

	"foodpool-be/internal/comment"
	"foodpool-be/internal/favorite"
	"foodpool-be/internal/geocode"
	"foodpool-be/internal/listing"
	"foodpool-be/internal/location"
	"foodpool-be/internal/logger"
	"foodpool-be/internal/order"
	"foodpool-be/internal/profile"
	"foodpool-be/internal/review"
	"foodpool-be/internal/session"
	"foodpool-be/internal/storage"
	"foodpool-be/internal/utils"

	"go.uber.org/zap"
)

var ErrBadRequest = errors.New("invalid request")

const (
	feedPath     = "/api/feed"
	internalMsg  = "internal server error"
	upstreamCode = http.StatusBadGateway
)

type errorRule struct {
	code int
	errs []error
}

var errorRules = []errorRule{
	{http.StatusBadRequest, []error{
		ErrBadRequest,
		session.ErrInvalidInput,
		listing.ErrInvalidImage,
		listing.ErrInvalidTitle,
		listing.ErrInvalidPrice,
		listing.ErrInvalidCategory,
		listing.ErrNothingToUpdate,
		listing.ErrKitchenLocation,
		order.ErrInvalidQuantity,
		order.ErrListingInactive,
		order.ErrOwnListing,
		location.ErrInvalidCoordinates,
		location.ErrInvalidDistance,
		location.ErrEmptyQuery,
		profile.ErrInvalidCoordinates,
		profile.ErrIncompleteLocation,
		profile.ErrNothingToUpdate,
		review.ErrInvalidRating,
		review.ErrNotCompleted,
		comment.ErrEmptyContent,
		comment.ErrContentTooLong,
		storage.ErrEmptyFile,
		storage.ErrImageTooLarge,
		storage.ErrNotImage,
	}},
	{http.StatusUnauthorized, []error{
		session.ErrInvalidCredentials,
		session.ErrInvalidToken,
	}},
	{http.StatusForbidden, []error{
		listing.ErrForbidden,
	}},
	{http.StatusNotFound, []error{
		listing.ErrListingNotFound,
		order.ErrOrderNotFound,
		order.ErrListingNotFound,
		review.ErrOrderNotFound,
		review.ErrProfileNotFound,
		favorite.ErrListingNotFound,
		comment.ErrListingNotFound,
		profile.ErrProfileNotFound,
		location.ErrAddressNotFound,
		session.ErrUserNotFound,
		session.ErrProfileNotFound,
	}},
	{http.StatusConflict, []error{
		session.ErrEmailExists,
		order.ErrInvalidTransition,
		order.ErrStatusConflict,
		review.ErrAlreadyRated,
		listing.ErrHasOrders,
	}},
	{upstreamCode, []error{
		geocode.ErrUpstream,
	}},
}

// StatusFor maps a service error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	for _, rule := range errorRules {
		for _, target := range rule.errs {
			if errors.Is(err, target) {
				return rule.code
			}
		}
	}
	return http.StatusInternalServerError
}

// fail writes err as JSON. Not-found answers carry fallback, the list page
// the client should return to.
func fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code := StatusFor(err)
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
		zap.Int("status", code),
	)

	switch {
	case code == http.StatusInternalServerError:
		log.Error("request failed", zap.Error(err))
		utils.WriteJSONError(w, internalMsg, code)
	case code == upstreamCode:
		log.Warn("upstream failure", zap.Error(err))
		utils.WriteJSONError(w, geocode.ErrUpstream.Error(), code)
	case code == http.StatusNotFound:
		log.Info("not found", zap.Error(err))
		utils.WriteJSONNotFound(w, err.Error(), fallback)
	default:
		log.Info("request rejected", zap.Error(err))
		utils.WriteJSONError(w, err.Error(), code)
	}
}
