package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/shell/media"
	"github.com/kalipsan/sitecms/internal/shell/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

type testEnv struct {
	handler http.Handler
	store   store.Store
	media   *media.Store
}

func setupTestAPI(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	m, err := media.New(t.TempDir())
	require.NoError(t, err)

	h := NewHandler(s, m, slog.New(slog.DiscardHandler))
	return &testEnv{handler: h.Routes(), store: s, media: m}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// login creates an admin user and returns its session cookie.
func login(t *testing.T, e *testEnv) *http.Cookie {
	t.Helper()

	user, err := domain.NewUser("Admin", "admin@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, e.store.CreateUser(context.Background(), user))

	rec := e.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse-battery",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	t.Fatal("login response did not set session cookie")
	return nil
}

func createCategory(t *testing.T, e *testEnv, name string) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(name, "", "")
	require.NoError(t, err)
	require.NoError(t, e.store.CreateCategory(context.Background(), category))
	return category
}

// =============================================================================
// Health
// =============================================================================

func TestHealth(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "healthy", resp.Status)
}

// =============================================================================
// Public Content
// =============================================================================

func TestPublicGetCategoryBySlug(t *testing.T) {
	e := setupTestAPI(t)
	category := createCategory(t, e, "Kare Kalıplar")

	rec := e.do(t, http.MethodGet, "/api/v1/categories/kare-kaliplar", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[domain.Category](t, rec)
	assert.Equal(t, category.ID, got.ID)

	rec = e.do(t, http.MethodGet, "/api/v1/categories/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicPosts_OnlyPublished(t *testing.T) {
	e := setupTestAPI(t)
	ctx := context.Background()

	draft, err := domain.NewPost("Draft Post", "content")
	require.NoError(t, err)
	require.NoError(t, e.store.CreatePost(ctx, draft))

	live, err := domain.NewPost("Live Post", "content")
	require.NoError(t, err)
	live.Publish(live.CreatedAt)
	require.NoError(t, e.store.CreatePost(ctx, live))

	rec := e.do(t, http.MethodGet, "/api/v1/posts", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	posts := decodeJSON[[]domain.Post](t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, live.ID, posts[0].ID)

	// The draft's slug exists but is not publicly visible.
	rec = e.do(t, http.MethodGet, "/api/v1/posts/draft-post", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicSettings_AutoCreates(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodGet, "/api/v1/settings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	settings := decodeJSON[domain.Settings](t, rec)
	assert.Equal(t, domain.SettingsID, settings.ID)
	assert.NotEmpty(t, settings.SiteName)
}

func TestSubmitContact(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodPost, "/api/v1/contact", ContactRequest{
		Name: "Ali", Email: "ali@example.com",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/v1/contact", ContactRequest{
		Name: "Ali", Email: "ali@example.com", Message: "Fiyat bilgisi",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	msgs, err := e.store.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Fiyat bilgisi", msgs[0].Message)
}

// =============================================================================
// Auth
// =============================================================================

func TestLogin_InvalidCredentials(t *testing.T) {
	e := setupTestAPI(t)

	user, err := domain.NewUser("Admin", "admin@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, e.store.CreateUser(context.Background(), user))

	rec := e.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email: "admin@example.com", Password: "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown email gets the identical response.
	rec = e.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email: "nobody@example.com", Password: "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "invalid_credentials", resp.Code)
}

func TestAuthMe(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodGet, "/api/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := login(t, e)
	rec = e.do(t, http.MethodGet, "/api/v1/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeJSON[UserResponse](t, rec)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, "admin", user.Role)
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodGet, "/api/v1/admin/messages", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A cookie pointing at a deleted user is rejected too.
	rec = e.do(t, http.MethodGet, "/api/v1/admin/messages", nil, &http.Cookie{
		Name: "auth_token", Value: "no-such-user",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// =============================================================================
// Admin CRUD
// =============================================================================

func TestAdminCreateCategory(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := e.do(t, http.MethodPost, "/api/v1/admin/categories", CategoryRequest{
		Name: "Oluk Kalıpları",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeJSON[domain.Category](t, rec)
	assert.Equal(t, "oluk-kaliplari", created.Slug)

	// Same normalized slug is rejected with 409 and no second row.
	rec = e.do(t, http.MethodPost, "/api/v1/admin/categories", CategoryRequest{
		Name: "OLUK KALIPLARI",
	}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "duplicate_slug", resp.Code)

	categories, err := e.store.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestAdminDeleteCategory_InUse(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)
	ctx := context.Background()

	category := createCategory(t, e, "Bordür Kalıpları")
	product, err := domain.NewProduct("Bordür 50cm", category.ID)
	require.NoError(t, err)
	require.NoError(t, e.store.CreateProduct(ctx, product))

	rec := e.do(t, http.MethodDelete, "/api/v1/admin/categories/"+category.ID, nil, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "category_in_use", resp.Code)
}

func TestAdminCreateProduct_UnknownCategory(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := e.do(t, http.MethodPost, "/api/v1/admin/products", ProductRequest{
		Name: "40x40 Kare", CategoryID: "no-such-category",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUpdateProduct_SelfSlugAllowed(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)
	ctx := context.Background()

	category := createCategory(t, e, "Kare Kalıplar")
	product, err := domain.NewProduct("40x40 Kare Beton Kalıbı", category.ID)
	require.NoError(t, err)
	require.NoError(t, e.store.CreateProduct(ctx, product))

	// Saving without renaming keeps the same slug; no false conflict.
	rec := e.do(t, http.MethodPut, "/api/v1/admin/products/"+product.ID, ProductRequest{
		Name: "40x40 Kare Beton Kalıbı", CategoryID: category.ID, Featured: true,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeJSON[domain.Product](t, rec)
	assert.Equal(t, product.Slug, updated.Slug)
	assert.True(t, updated.Featured)
}

func TestAdminPostPublishFlow(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := e.do(t, http.MethodPost, "/api/v1/admin/posts", PostRequest{
		Title: "Yeni Duyuru", Content: "içerik",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[domain.Post](t, rec)
	assert.False(t, created.Published)
	assert.NotEmpty(t, created.AuthorID)

	rec = e.do(t, http.MethodPut, "/api/v1/admin/posts/"+created.ID, PostRequest{
		Title: "Yeni Duyuru", Content: "içerik", Published: true,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.Post](t, rec)
	assert.True(t, updated.Published)
	assert.NotNil(t, updated.PublishedAt)
}

// =============================================================================
// Media
// =============================================================================

func uploadFile(t *testing.T, e *testEnv, cookie *http.Cookie, filename, contentType, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestMediaUploadAndServe(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := uploadFile(t, e, cookie, "my photo!.png", "image/png", "png bytes")
	require.Equal(t, http.StatusCreated, rec.Code)

	uploaded := decodeJSON[UploadResponse](t, rec)
	assert.Regexp(t, regexp.MustCompile(`^\d+-my_photo_\.png$`), uploaded.Name)
	assert.Equal(t, "/uploads/"+uploaded.Name, uploaded.URL)

	serve := e.do(t, http.MethodGet, uploaded.URL, nil, nil)
	require.Equal(t, http.StatusOK, serve.Code)
	assert.Equal(t, "image/png", serve.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", serve.Header().Get("Cache-Control"))
	assert.Equal(t, "png bytes", serve.Body.String())
}

func TestMediaUpload_RejectsDisallowedType(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := uploadFile(t, e, cookie, "script.sh", "application/x-sh", "#!/bin/sh")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeJSON[ErrorResponse](t, rec)
	assert.Equal(t, "unsupported_type", resp.Code)
}

func TestMediaDelete_Idempotent(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := uploadFile(t, e, cookie, "photo.jpg", "image/jpeg", "data")
	require.Equal(t, http.StatusCreated, rec.Code)
	uploaded := decodeJSON[UploadResponse](t, rec)

	rec2 := e.do(t, http.MethodDelete, "/api/v1/admin/media/"+uploaded.Name, nil, cookie)
	assert.Equal(t, http.StatusOK, rec2.Code)

	rec2 = e.do(t, http.MethodDelete, "/api/v1/admin/media/"+uploaded.Name, nil, cookie)
	assert.Equal(t, http.StatusOK, rec2.Code)

	serve := e.do(t, http.MethodGet, "/uploads/"+uploaded.Name, nil, nil)
	assert.Equal(t, http.StatusNotFound, serve.Code)
}

func TestDeleteProduct_CleansUpImages(t *testing.T) {
	e := setupTestAPI(t)
	cookie := login(t, e)

	rec := uploadFile(t, e, cookie, "mold.png", "image/png", "image data")
	require.Equal(t, http.StatusCreated, rec.Code)
	uploaded := decodeJSON[UploadResponse](t, rec)

	category := createCategory(t, e, "Kare Kalıplar")
	rec = e.do(t, http.MethodPost, "/api/v1/admin/products", ProductRequest{
		Name: "40x40 Kare", CategoryID: category.ID, Images: []string{uploaded.URL},
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	product := decodeJSON[domain.Product](t, rec)

	rec = e.do(t, http.MethodDelete, "/api/v1/admin/products/"+product.ID, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	serve := e.do(t, http.MethodGet, uploaded.URL, nil, nil)
	assert.Equal(t, http.StatusNotFound, serve.Code)
}

// =============================================================================
// OpenAPI
// =============================================================================

func TestOpenAPIDocument(t *testing.T) {
	e := setupTestAPI(t)

	rec := e.do(t, http.MethodGet, "/api/v1/openapi.json", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "3.0.3", spec["openapi"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/products")
	assert.Contains(t, paths, "/api/v1/products/{slug}")
	assert.Contains(t, paths, "/api/v1/admin/products/{id}")
}
