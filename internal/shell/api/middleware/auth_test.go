package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/shell/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]*domain.User
}

func (f *fakeUserStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, store.NewStoreError("GetUser", "user", id, "user not found", store.ErrNotFound)
}

type failingUserStore struct{}

func (failingUserStore) GetUser(context.Context, string) (*domain.User, error) {
	return nil, errors.New("database gone")
}

func newTestSession(users map[string]*domain.User) *Session {
	return NewSession(&fakeUserStore{users: users}, slog.New(slog.DiscardHandler))
}

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUser, user.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequire_NoCookie(t *testing.T) {
	session := newTestSession(nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	session.Require(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestRequire_UnknownUser(t *testing.T) {
	session := newTestSession(nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "ghost"})
	rec := httptest.NewRecorder()
	session.Require(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_StoreFailure(t *testing.T) {
	session := NewSession(failingUserStore{}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "user-1"})
	rec := httptest.NewRecorder()
	session.Require(okHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_ValidSession(t *testing.T) {
	user := &domain.User{ID: "user-1", Name: "Admin", Email: "a@example.com", Role: "admin"}
	session := newTestSession(map[string]*domain.User{"user-1": user})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "user-1"})
	rec := httptest.NewRecorder()
	session.Require(okHandler(t, "user-1")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "user-1")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "user-1", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int(SessionMaxAge.Seconds()), c.MaxAge)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
