package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/core/validation"
)

// =============================================================================
// Reference Handlers
// =============================================================================

func (h *Handler) handleListReferences(w http.ResponseWriter, r *http.Request) {
	refs, err := h.store.ListReferences(r.Context(), true)
	if err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}
	h.writeJSON(w, http.StatusOK, refs)
}

func (h *Handler) handleListAllReferences(w http.ResponseWriter, r *http.Request) {
	refs, err := h.store.ListReferences(r.Context(), false)
	if err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}
	h.writeJSON(w, http.StatusOK, refs)
}

func (h *Handler) handleCreateReference(w http.ResponseWriter, r *http.Request) {
	var req ReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	ref, err := domain.NewReference(req.Name)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	ref.Description = req.Description
	ref.Logo = req.Logo
	ref.Website = req.Website
	ref.Order = req.Order
	if req.Active != nil {
		ref.Active = *req.Active
	}

	if err := h.store.CreateReference(r.Context(), ref); err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}
	h.writeJSON(w, http.StatusCreated, ref)
}

func (h *Handler) handleUpdateReference(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ref, err := h.store.GetReference(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}

	var req ReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "name is required", "validation_error")
		return
	}

	ref.Name = req.Name
	ref.Description = req.Description
	if req.Logo != ref.Logo {
		h.deleteMediaFile(ref.Logo)
		ref.Logo = req.Logo
	}
	ref.Website = req.Website
	ref.Order = req.Order
	if req.Active != nil {
		ref.Active = *req.Active
	}
	ref.UpdatedAt = time.Now()

	if err := h.store.UpdateReference(r.Context(), ref); err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}
	h.writeJSON(w, http.StatusOK, ref)
}

func (h *Handler) handleDeleteReference(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ref, err := h.store.GetReference(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}

	if err := h.store.DeleteReference(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "reference")
		return
	}

	h.deleteMediaFile(ref.Logo)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// =============================================================================
// Hero Slide Handlers
// =============================================================================

func (h *Handler) handleListSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.store.ListSlides(r.Context(), true)
	if err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}
	h.writeJSON(w, http.StatusOK, slides)
}

func (h *Handler) handleListAllSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.store.ListSlides(r.Context(), false)
	if err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}
	h.writeJSON(w, http.StatusOK, slides)
}

func (h *Handler) handleCreateSlide(w http.ResponseWriter, r *http.Request) {
	var req SlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	slide, err := domain.NewHeroSlide(req.Title, req.Image)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	slide.Subtitle = req.Subtitle
	slide.CTAText = req.CTAText
	slide.CTALink = req.CTALink
	slide.Order = req.Order
	if req.Active != nil {
		slide.Active = *req.Active
	}

	if err := h.store.CreateSlide(r.Context(), slide); err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}
	h.writeJSON(w, http.StatusCreated, slide)
}

func (h *Handler) handleUpdateSlide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slide, err := h.store.GetSlide(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}

	var req SlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Title == "" || req.Image == "" {
		h.writeError(w, http.StatusBadRequest, "title and image are required", "validation_error")
		return
	}

	slide.Title = req.Title
	slide.Subtitle = req.Subtitle
	if req.Image != slide.Image {
		h.deleteMediaFile(slide.Image)
		slide.Image = req.Image
	}
	slide.CTAText = req.CTAText
	slide.CTALink = req.CTALink
	slide.Order = req.Order
	if req.Active != nil {
		slide.Active = *req.Active
	}
	slide.UpdatedAt = time.Now()

	if err := h.store.UpdateSlide(r.Context(), slide); err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}
	h.writeJSON(w, http.StatusOK, slide)
}

func (h *Handler) handleDeleteSlide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slide, err := h.store.GetSlide(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}

	if err := h.store.DeleteSlide(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "slide")
		return
	}

	h.deleteMediaFile(slide.Image)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// =============================================================================
// Catalog Handlers
// =============================================================================

func (h *Handler) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.store.ListCatalogs(r.Context(), true)
	if err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}
	h.writeJSON(w, http.StatusOK, catalogs)
}

func (h *Handler) handleListAllCatalogs(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.store.ListCatalogs(r.Context(), false)
	if err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}
	h.writeJSON(w, http.StatusOK, catalogs)
}

func (h *Handler) handleCreateCatalog(w http.ResponseWriter, r *http.Request) {
	var req CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	catalog, err := domain.NewCatalog(req.Name, req.FileURL)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	catalog.CoverImage = req.CoverImage
	catalog.Order = req.Order
	if req.Active != nil {
		catalog.Active = *req.Active
	}

	if err := h.store.CreateCatalog(r.Context(), catalog); err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}
	h.writeJSON(w, http.StatusCreated, catalog)
}

func (h *Handler) handleUpdateCatalog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	catalog, err := h.store.GetCatalog(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}

	var req CatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.Name == "" || req.FileURL == "" {
		h.writeError(w, http.StatusBadRequest, "name and file_url are required", "validation_error")
		return
	}

	catalog.Name = req.Name
	if req.FileURL != catalog.FileURL {
		h.deleteMediaFile(catalog.FileURL)
		catalog.FileURL = req.FileURL
	}
	if req.CoverImage != catalog.CoverImage {
		h.deleteMediaFile(catalog.CoverImage)
		catalog.CoverImage = req.CoverImage
	}
	catalog.Order = req.Order
	if req.Active != nil {
		catalog.Active = *req.Active
	}
	catalog.UpdatedAt = time.Now()

	if err := h.store.UpdateCatalog(r.Context(), catalog); err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}
	h.writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleDeleteCatalog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	catalog, err := h.store.GetCatalog(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}

	if err := h.store.DeleteCatalog(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "catalog")
		return
	}

	h.deleteMediaFile(catalog.FileURL)
	h.deleteMediaFile(catalog.CoverImage)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// =============================================================================
// Settings Handlers
// =============================================================================

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "settings")
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}
	if req.SiteName == "" {
		h.writeError(w, http.StatusBadRequest, "site_name is required", "validation_error")
		return
	}

	settings := &domain.Settings{
		ID:                  domain.SettingsID,
		SiteName:            req.SiteName,
		Logo:                req.Logo,
		Favicon:             req.Favicon,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		WhatsApp:            req.WhatsApp,
		MapEmbedURL:         req.MapEmbedURL,
		HeroTitle:           req.HeroTitle,
		HeroSubtitle:        req.HeroSubtitle,
		HeroImage:           req.HeroImage,
		PrimaryColor:        req.PrimaryColor,
		SecondaryColor:      req.SecondaryColor,
		AboutTitle:          req.AboutTitle,
		AboutContent:        req.AboutContent,
		AboutImage:          req.AboutImage,
		MissionTitle:        req.MissionTitle,
		MissionContent:      req.MissionContent,
		VisionTitle:         req.VisionTitle,
		VisionContent:       req.VisionContent,
		HomeMetaTitle:       req.HomeMetaTitle,
		HomeMetaDescription: req.HomeMetaDescription,
		CopyrightText:       req.CopyrightText,
		UpdatedAt:           time.Now(),
	}

	if err := h.store.UpdateSettings(r.Context(), settings); err != nil {
		h.writeStoreError(w, err, "settings")
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// =============================================================================
// Contact Handlers
// =============================================================================

func (h *Handler) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateContactFields(req.Name, req.Email, req.Message); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	msg, err := domain.NewContactMessage(req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.CreateContactMessage(r.Context(), msg); err != nil {
		h.writeStoreError(w, err, "contact message")
		return
	}
	h.writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.ListContactMessages(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "contact message")
		return
	}
	h.writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.MarkContactMessageRead(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "contact message")
		return
	}
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "read"})
}

func (h *Handler) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteContactMessage(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "contact message")
		return
	}
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
