// Package api provides HTTP handlers for the site content API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kalipsan/sitecms/internal/shell/api/middleware"
	"github.com/kalipsan/sitecms/internal/shell/api/openapi"
	"github.com/kalipsan/sitecms/internal/shell/media"
	"github.com/kalipsan/sitecms/internal/shell/store"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	store   store.Store
	media   *media.Store
	logger  *slog.Logger
	openapi *openapi.Generator
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, m *media.Store, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:   s,
		media:   m,
		logger:  l,
		openapi: newSpecGenerator(),
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(h.requestIDHeader)

	r.Get("/health", h.handleHealth)

	// Media files are served outside the API prefix so stored URLs stay
	// short and stable.
	r.Get("/uploads/{filename}", h.handleServeMedia)

	session := middleware.NewSession(h.store, h.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/openapi.json", h.openapi.Handler())

		// Public content
		r.Get("/categories", h.handleListCategories)
		r.Get("/categories/{slug}", h.handleGetCategory)
		r.Get("/products", h.handleListProducts)
		r.Get("/products/{slug}", h.handleGetProduct)
		r.Get("/posts", h.handleListPublishedPosts)
		r.Get("/posts/{slug}", h.handleGetPost)
		r.Get("/references", h.handleListReferences)
		r.Get("/slides", h.handleListSlides)
		r.Get("/catalogs", h.handleListCatalogs)
		r.Get("/settings", h.handleGetSettings)
		r.Post("/contact", h.handleSubmitContact)

		// Auth
		r.Post("/auth/login", h.handleLogin)
		r.Post("/auth/logout", h.handleLogout)
		r.With(session.Require).Get("/auth/me", h.handleMe)

		// Admin (session required)
		r.Route("/admin", func(r chi.Router) {
			r.Use(session.Require)

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", h.handleCreateCategory)
				r.Get("/", h.handleListCategories)
				r.Put("/{id}", h.handleUpdateCategory)
				r.Delete("/{id}", h.handleDeleteCategory)
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", h.handleCreateProduct)
				r.Get("/", h.handleListProducts)
				r.Get("/{id}", h.handleGetProductByID)
				r.Put("/{id}", h.handleUpdateProduct)
				r.Delete("/{id}", h.handleDeleteProduct)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", h.handleCreatePost)
				r.Get("/", h.handleListAllPosts)
				r.Get("/{id}", h.handleGetPostByID)
				r.Put("/{id}", h.handleUpdatePost)
				r.Delete("/{id}", h.handleDeletePost)
			})

			r.Route("/references", func(r chi.Router) {
				r.Post("/", h.handleCreateReference)
				r.Get("/", h.handleListAllReferences)
				r.Put("/{id}", h.handleUpdateReference)
				r.Delete("/{id}", h.handleDeleteReference)
			})

			r.Route("/slides", func(r chi.Router) {
				r.Post("/", h.handleCreateSlide)
				r.Get("/", h.handleListAllSlides)
				r.Put("/{id}", h.handleUpdateSlide)
				r.Delete("/{id}", h.handleDeleteSlide)
			})

			r.Route("/catalogs", func(r chi.Router) {
				r.Post("/", h.handleCreateCatalog)
				r.Get("/", h.handleListAllCatalogs)
				r.Put("/{id}", h.handleUpdateCatalog)
				r.Delete("/{id}", h.handleDeleteCatalog)
			})

			r.Put("/settings", h.handleUpdateSettings)

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.handleListMessages)
				r.Post("/{id}/read", h.handleMarkMessageRead)
				r.Delete("/{id}", h.handleDeleteMessage)
			})

			r.Route("/media", func(r chi.Router) {
				r.Post("/", h.handleUploadMedia)
				r.Get("/", h.handleListMedia)
				r.Delete("/{filename}", h.handleDeleteMedia)
			})
		})
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := chimw.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// =============================================================================
// JSON Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeStoreError translates store failures into HTTP responses. entity is
// used in messages and error codes.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.writeError(w, http.StatusNotFound, entity+" not found", entity+"_not_found")
	case errors.Is(err, store.ErrDuplicateSlug):
		h.writeError(w, http.StatusConflict, "a "+entity+" with this slug already exists", "duplicate_slug")
	case errors.Is(err, store.ErrDuplicateEmail):
		h.writeError(w, http.StatusConflict, "a user with this email already exists", "duplicate_email")
	case errors.Is(err, store.ErrCategoryInUse):
		h.writeError(w, http.StatusConflict, "category still has products", "category_in_use")
	default:
		h.logger.Error("store operation failed", "entity", entity, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// deleteMediaFile best-effort deletes a stored file referenced by URL, for
// cleanup when an entity is deleted or its image replaced. Failures are
// logged and never surfaced to the client.
func (h *Handler) deleteMediaFile(url string) {
	name := media.NameFromURL(url)
	if name == "" {
		return
	}
	if err := h.media.Delete(name); err != nil {
		h.logger.Warn("failed to delete media file", "file", name, "error", err)
	}
}
