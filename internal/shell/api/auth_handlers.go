package api

import (
	"encoding/json"
	"net/http"

	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/core/validation"
	"github.com/kalipsan/sitecms/internal/shell/api/middleware"
)

// =============================================================================
// Auth Handlers
// =============================================================================

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateLoginFields(req.Email, req.Password); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if isNotFound(err) {
			// Same response as a wrong password; don't leak which emails
			// have accounts.
			h.writeError(w, http.StatusUnauthorized, "invalid email or password", "invalid_credentials")
			return
		}
		h.writeStoreError(w, err, "user")
		return
	}

	if !user.CheckPassword(req.Password) {
		h.writeError(w, http.StatusUnauthorized, "invalid email or password", "invalid_credentials")
		return
	}

	middleware.SetSessionCookie(w, user.ID)
	h.logger.Info("admin logged in", "email", user.Email)
	h.writeJSON(w, http.StatusOK, userToResponse(user))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "logged_out"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := authUser(r)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "authentication required", "unauthorized")
		return
	}
	h.writeJSON(w, http.StatusOK, userToResponse(user))
}

// authUser returns the session user placed in the context by the middleware.
func authUser(r *http.Request) (*domain.User, bool) {
	return middleware.UserFromContext(r.Context())
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
