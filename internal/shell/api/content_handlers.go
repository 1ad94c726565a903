package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/core/validation"
	"github.com/kalipsan/sitecms/internal/shell/store"
)

// =============================================================================
// Category Handlers
// =============================================================================

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.writeStoreError(w, err, "category")
		return
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, err := h.store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		h.writeStoreError(w, err, "category")
		return
	}
	h.writeJSON(w, http.StatusOK, category)
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateCategoryFields(req.Name); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	category, err := domain.NewCategory(req.Name, req.Description, req.Image)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	if err := h.store.CreateCategory(r.Context(), category); err != nil {
		h.writeStoreError(w, err, "category")
		return
	}

	h.writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.store.GetCategory(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "category")
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateCategoryFields(req.Name); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if err := category.Rename(req.Name); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	category.Description = req.Description
	if req.Image != category.Image {
		h.deleteMediaFile(category.Image)
		category.Image = req.Image
	}
	category.UpdatedAt = time.Now()

	if err := h.store.UpdateCategory(r.Context(), category); err != nil {
		h.writeStoreError(w, err, "category")
		return
	}

	h.writeJSON(w, http.StatusOK, category)
}

func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.store.GetCategory(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "category")
		return
	}

	if err := h.store.DeleteCategory(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "category")
		return
	}

	h.deleteMediaFile(category.Image)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// =============================================================================
// Product Handlers
// =============================================================================

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter := store.ProductFilter{}

	if category := r.URL.Query().Get("category"); category != "" {
		// The public site filters by category slug; fall back to treating
		// the value as an ID for admin clients.
		if c, err := h.store.GetCategoryBySlug(r.Context(), category); err == nil {
			filter.CategoryID = c.ID
		} else {
			filter.CategoryID = category
		}
	}
	if featured := r.URL.Query().Get("featured"); featured != "" {
		if f, err := strconv.ParseBool(featured); err == nil {
			filter.Featured = store.BoolFilter(f)
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			filter.Limit = l
		}
	}

	products, err := h.store.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeStoreError(w, err, "product")
		return
	}
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.store.GetProductBySlug(r.Context(), slug)
	if err != nil {
		h.writeStoreError(w, err, "product")
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleGetProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "product")
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateProductFields(req.Name, req.CategoryID); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if _, err := h.store.GetCategory(r.Context(), req.CategoryID); err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusBadRequest, "category does not exist", "validation_error")
			return
		}
		h.writeStoreError(w, err, "category")
		return
	}

	product, err := domain.NewProduct(req.Name, req.CategoryID)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	applyProductRequest(product, req)

	if err := h.store.CreateProduct(r.Context(), product); err != nil {
		h.writeStoreError(w, err, "product")
		return
	}

	h.writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "product")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidateProductFields(req.Name, req.CategoryID); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if err := product.Rename(req.Name); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}

	// Clean up image files dropped by this update.
	kept := make(map[string]bool, len(req.Images))
	for _, url := range req.Images {
		kept[url] = true
	}
	for _, url := range product.ImageURLs() {
		if !kept[url] {
			h.deleteMediaFile(url)
		}
	}

	applyProductRequest(product, req)
	product.UpdatedAt = time.Now()

	if err := h.store.UpdateProduct(r.Context(), product); err != nil {
		h.writeStoreError(w, err, "product")
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "product")
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "product")
		return
	}

	for _, url := range product.ImageURLs() {
		h.deleteMediaFile(url)
	}
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func applyProductRequest(p *domain.Product, req ProductRequest) {
	p.Description = req.Description
	p.Content = req.Content
	p.Dimensions = req.Dimensions
	p.Weight = req.Weight
	p.Material = req.Material
	p.MetaTitle = req.MetaTitle
	p.MetaDescription = req.MetaDescription
	p.VideoURL = req.VideoURL
	p.CategoryID = req.CategoryID
	p.Featured = req.Featured
	p.Order = req.Order
	p.SetImages(req.Images)
}

// =============================================================================
// Post Handlers
// =============================================================================

func (h *Handler) handleListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	filter := store.PostFilter{Published: store.BoolFilter(true)}
	h.listPosts(w, r, filter)
}

func (h *Handler) handleListAllPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, store.PostFilter{})
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request, filter store.PostFilter) {
	if category := r.URL.Query().Get("category"); category != "" {
		filter.CategoryID = category
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			filter.Limit = l
		}
	}

	posts, err := h.store.ListPosts(r.Context(), filter)
	if err != nil {
		h.writeStoreError(w, err, "post")
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.store.GetPostBySlug(r.Context(), slug)
	if err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	// Drafts are not visible on the public endpoint.
	if !post.Published {
		h.writeError(w, http.StatusNotFound, "post not found", "post_not_found")
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) handleGetPostByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "post")
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidatePostFields(req.Title, req.Content); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	post, err := domain.NewPost(req.Title, req.Content)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	post.Excerpt = req.Excerpt
	post.Image = req.Image
	post.MetaTitle = req.MetaTitle
	post.MetaDescription = req.MetaDescription
	post.CategoryID = req.CategoryID
	if user, ok := authUser(r); ok {
		post.AuthorID = user.ID
	}
	if req.Published {
		post.Publish(time.Now())
	}

	if err := h.store.CreatePost(r.Context(), post); err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	h.writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	if field, msg := validation.ValidatePostFields(req.Title, req.Content); field != "" {
		h.writeError(w, http.StatusBadRequest, msg, "validation_error")
		return
	}

	if err := post.Retitle(req.Title); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
		return
	}
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	if req.Image != post.Image {
		h.deleteMediaFile(post.Image)
		post.Image = req.Image
	}
	post.MetaTitle = req.MetaTitle
	post.MetaDescription = req.MetaDescription
	post.CategoryID = req.CategoryID

	if req.Published && !post.Published {
		post.Publish(time.Now())
	} else if !req.Published && post.Published {
		post.Unpublish()
	}
	post.UpdatedAt = time.Now()

	if err := h.store.UpdatePost(r.Context(), post); err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	if err := h.store.DeletePost(r.Context(), id); err != nil {
		h.writeStoreError(w, err, "post")
		return
	}

	h.deleteMediaFile(post.Image)
	h.writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
