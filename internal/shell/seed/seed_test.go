package seed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalipsan/sitecms/internal/shell/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
admin:
  name: Admin
  email: admin@example.com
  password: seed-password-123

settings:
  site_name: Kalıp Sanayi
  phone: "+90 555 000 0000"

categories:
  - name: Kare Kalıplar
    description: Kare beton kalıpları
  - name: Oluk Kalıpları

products:
  - name: 40x40 Kare Beton Kalıbı
    category: kare-kaliplar
    dimensions: 40x40x5 cm
    featured: true
    images:
      - /uploads/1.png

posts:
  - title: Beton Kalıp Bakımı
    content: Kalıplarınızı uzun ömürlü kullanmak için...
  - title: Taslak Duyuru
    content: Henüz yayında değil.
    published: false

slides:
  - title: Hoş Geldiniz
    image: /uploads/hero.png
    order: 1

references:
  - name: Yılmaz İnşaat

catalogs:
  - name: 2026 Kataloğu
    file_url: /uploads/katalog.pdf
`

func setupSeedTest(t *testing.T) (store.Store, *File) {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSeed), 0o640))

	f, err := Load(path)
	require.NoError(t, err)
	return s, f
}

func TestLoad_ParsesAllSections(t *testing.T) {
	_, f := setupSeedTest(t)

	require.NotNil(t, f.Admin)
	assert.Equal(t, "admin@example.com", f.Admin.Email)
	require.NotNil(t, f.Settings)
	assert.Equal(t, "Kalıp Sanayi", f.Settings.SiteName)
	assert.Len(t, f.Categories, 2)
	assert.Len(t, f.Products, 1)
	assert.Len(t, f.Posts, 2)
	assert.Len(t, f.Slides, 1)
	assert.Len(t, f.References, 1)
	assert.Len(t, f.Catalogs, 1)
}

func TestApply_CreatesContent(t *testing.T) {
	s, f := setupSeedTest(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, s, f, slog.New(slog.DiscardHandler)))

	user, err := s.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("seed-password-123"))

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kalıp Sanayi", settings.SiteName)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	product, err := s.GetProductBySlug(ctx, "40x40-kare-beton-kalibi")
	require.NoError(t, err)
	assert.True(t, product.Featured)
	require.Len(t, product.Images, 1)

	_, err = s.GetPostBySlug(ctx, "beton-kalip-bakimi")
	require.NoError(t, err)
}

func TestApply_PostsPublishByDefault(t *testing.T) {
	s, f := setupSeedTest(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, s, f, slog.New(slog.DiscardHandler)))

	post, err := s.GetPostBySlug(ctx, "beton-kalip-bakimi")
	require.NoError(t, err)
	assert.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)

	draft, err := s.GetPostBySlug(ctx, "taslak-duyuru")
	require.NoError(t, err)
	assert.False(t, draft.Published)

	// Only the published post shows on the public listing.
	public, err := s.ListPosts(ctx, store.PostFilter{Published: store.BoolFilter(true)})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "beton-kalip-bakimi", public[0].Slug)
}

func TestApply_Idempotent(t *testing.T) {
	s, f := setupSeedTest(t)
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, Apply(ctx, s, f, logger))
	require.NoError(t, Apply(ctx, s, f, logger))

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	slides, err := s.ListSlides(ctx, false)
	require.NoError(t, err)
	assert.Len(t, slides, 1)

	refs, err := s.ListReferences(ctx, false)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestApply_FailsOnUnknownCategory(t *testing.T) {
	s, f := setupSeedTest(t)
	ctx := context.Background()

	f.Products[0].Category = "does-not-exist"
	f.Categories = nil

	err := Apply(ctx, s, f, slog.New(slog.DiscardHandler))
	require.Error(t, err)

	// The transaction rolled back; nothing was seeded.
	users, err := s.GetUserByEmail(ctx, "admin@example.com")
	assert.Nil(t, users)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
