package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kalipsan/sitecms/internal/shell/media"
)

// =============================================================================
// Media Handlers
// =============================================================================

func (h *Handler) handleUploadMedia(w http.ResponseWriter, r *http.Request) {
	// Reject runaway request bodies before parsing the multipart form. The
	// real size check happens in the media store; the extra megabyte covers
	// multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "file exceeds maximum upload size", "payload_too_large")
			return
		}
		h.writeError(w, http.StatusBadRequest, "multipart field 'file' is required", "validation_error")
		return
	}
	defer file.Close()

	stored, err := h.media.Save(file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.writeMediaError(w, err)
		return
	}

	h.logger.Info("media uploaded", "file", stored.Name, "size", stored.Size)
	h.writeJSON(w, http.StatusCreated, UploadResponse{
		Name: stored.Name,
		URL:  "/uploads/" + stored.Name,
		Size: stored.Size,
	})
}

func (h *Handler) handleListMedia(w http.ResponseWriter, r *http.Request) {
	files, err := h.media.List()
	if err != nil {
		h.logger.Error("failed to list media", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := make([]UploadResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, UploadResponse{
			Name: f.Name,
			URL:  "/uploads/" + f.Name,
			Size: f.Size,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	if err := h.media.Delete(name); err != nil {
		h.writeMediaError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func (h *Handler) handleServeMedia(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	f, err := h.media.Open(name)
	if err != nil {
		h.writeMediaError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", media.ContentType(name))
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn("failed to stream media file", "file", name, "error", err)
	}
}

func (h *Handler) writeMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrUnsupportedType):
		h.writeError(w, http.StatusBadRequest, "unsupported file type", "unsupported_type")
	case errors.Is(err, media.ErrPayloadTooLarge):
		h.writeError(w, http.StatusRequestEntityTooLarge, "file exceeds maximum upload size", "payload_too_large")
	case errors.Is(err, media.ErrInvalidName):
		h.writeError(w, http.StatusBadRequest, "invalid file name", "invalid_name")
	case errors.Is(err, media.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "file not found", "file_not_found")
	default:
		h.logger.Error("media operation failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	}
}
