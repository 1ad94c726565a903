// Package middleware provides HTTP middleware for the site API.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/shell/store"
)

// =============================================================================
// Session Cookie
// =============================================================================

// CookieName is the session cookie. Its value is the user ID of the logged-in
// admin; the cookie is HTTP-only so scripts never see it.
const CookieName = "auth_token"

// SessionMaxAge is how long a login stays valid.
const SessionMaxAge = 7 * 24 * time.Hour

// SetSessionCookie writes the session cookie after a successful login.
func SetSessionCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionMaxAge.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie on logout.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// =============================================================================
// Session Middleware
// =============================================================================

type contextKey struct{}

var userContextKey contextKey

// UserStore looks up users for session validation. The store implements it.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// Session gates routes behind the session cookie.
type Session struct {
	users  UserStore
	logger *slog.Logger
}

// NewSession creates the session middleware.
func NewSession(users UserStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{users: users, logger: logger}
}

// Require rejects requests without a valid session cookie and puts the
// authenticated user in the request context.
func (s *Session) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			writeUnauthorized(w, "authentication required")
			return
		}

		user, err := s.users.GetUser(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeUnauthorized(w, "invalid session")
				return
			}
			s.logger.Error("session lookup failed", "error", err)
			writeUnauthorized(w, "invalid session")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user set by Require.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  "unauthorized",
	})
}
