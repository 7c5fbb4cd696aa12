package middleware

import (
	"context"
	"errors"
	"net/http"

	"foodpool-be/internal/auth"
	"foodpool-be/internal/logger"
	"foodpool-be/internal/session"
	"foodpool-be/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const sessionKey contextKey = "session"

const (
	CookLanding     = "/api/cook/dashboard"
	CustomerLanding = "/api/customer/dashboard"
)

// SessionResolver turns an access token into the caller's session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

func WithSession(ctx context.Context, s *session.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey, s)
	ctx = utils.SetUserContext(ctx, s.UserID, s.Email, string(s.Role))
	return logger.WithUserID(ctx, s.UserID.String())
}

func SessionFrom(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok && s != nil
}

// Authenticate resolves the session when a token is present. An invalid
// token leaves the request anonymous and guards further down decide; any
// other resolver failure answers 500.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractAccessToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := resolver.Resolve(r.Context(), token)
			if errors.Is(err, session.ErrInvalidToken) {
				logger.FromCtx(r.Context()).Debug("session not resolved", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.FromCtx(r.Context()).Error("session lookup failed", zap.Error(err))
				utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFrom(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole lets only role through. Other signed-in users are sent to
// their own landing page without an error body.
func RequireRole(role session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFrom(r.Context())
			if !ok {
				utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if s.Role != role {
				logger.FromCtx(r.Context()).Info("role mismatch",
					zap.String("want", string(role)),
					zap.String("have", string(s.Role)),
					zap.String("path", r.URL.Path),
				)
				http.Redirect(w, r, LandingPath(s.Role), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func LandingPath(role session.Role) string {
	if role == session.RoleCook {
		return CookLanding
	}
	return CustomerLanding
}
