package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Category Tests
// =============================================================================

func TestNewCategory_GeneratesSlug(t *testing.T) {
	cat, err := NewCategory("Beton Kalıpları", "desc", "")
	require.NoError(t, err)
	assert.Equal(t, "beton-kaliplari", cat.Slug)
	assert.NotEmpty(t, cat.ID)
}

func TestNewCategory_EmptyName(t *testing.T) {
	_, err := NewCategory("", "", "")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestNewCategory_NameSlugsToNothing(t *testing.T) {
	_, err := NewCategory("!!!", "", "")
	assert.ErrorIs(t, err, ErrEmptySlug)
}

func TestCategoryRename_SameNameKeepsSlug(t *testing.T) {
	cat, err := NewCategory("Parke Kalıpları", "", "")
	require.NoError(t, err)
	slug := cat.Slug

	require.NoError(t, cat.Rename("Parke Kalıpları"))
	assert.Equal(t, slug, cat.Slug)
}

func TestCategoryRename_NewNameRecomputesSlug(t *testing.T) {
	cat, err := NewCategory("Parke Kalıpları", "", "")
	require.NoError(t, err)

	require.NoError(t, cat.Rename("Bordür Kalıpları"))
	assert.Equal(t, "bordur-kaliplari", cat.Slug)
}

// =============================================================================
// Product Tests
// =============================================================================

func TestNewProduct_GeneratesSlug(t *testing.T) {
	p, err := NewProduct("40x40 Kare Beton Kalıbı", "cat-1")
	require.NoError(t, err)
	assert.Equal(t, "40x40-kare-beton-kalibi", p.Slug)
}

func TestProductSetImages_AssignsIDs(t *testing.T) {
	p, err := NewProduct("Kalıp", "cat-1")
	require.NoError(t, err)

	p.SetImages([]string{"/uploads/1-a.png", "/uploads/2-b.png"})
	require.Len(t, p.Images, 2)
	assert.NotEmpty(t, p.Images[0].ID)
	assert.Equal(t, []string{"/uploads/1-a.png", "/uploads/2-b.png"}, p.ImageURLs())
}

func TestProductRename_EmptySlugRejected(t *testing.T) {
	p, err := NewProduct("Kalıp", "cat-1")
	require.NoError(t, err)
	assert.ErrorIs(t, p.Rename("..."), ErrEmptySlug)
	assert.Equal(t, "kalip", p.Slug)
}

// =============================================================================
// Post Tests
// =============================================================================

func TestNewPost_RequiresTitleAndContent(t *testing.T) {
	_, err := NewPost("", "body")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = NewPost("Title", "")
	assert.ErrorIs(t, err, ErrContentRequired)
}

func TestPostPublish_StampsFirstPublicationOnly(t *testing.T) {
	p, err := NewPost("Yeni Ürünler", "body")
	require.NoError(t, err)
	require.False(t, p.Published)

	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p.Publish(first)
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, first, *p.PublishedAt)

	p.Unpublish()
	assert.False(t, p.Published)

	p.Publish(first.Add(24 * time.Hour))
	assert.Equal(t, first, *p.PublishedAt)
}

// =============================================================================
// Other Entities
// =============================================================================

func TestNewHeroSlide_RequiresImage(t *testing.T) {
	_, err := NewHeroSlide("Slide", "")
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestNewCatalog_RequiresFileURL(t *testing.T) {
	_, err := NewCatalog("2025 Katalog", "")
	assert.ErrorIs(t, err, ErrFileURLRequired)
}

func TestNewContactMessage_Validation(t *testing.T) {
	_, err := NewContactMessage("", "a@b.com", "", "hi")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewContactMessage("Ali", "", "", "hi")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NewContactMessage("Ali", "a@b.com", "", "")
	assert.ErrorIs(t, err, ErrMessageRequired)

	msg, err := NewContactMessage("Ali", "a@b.com", "+90 555", "hi")
	require.NoError(t, err)
	assert.False(t, msg.Read)
}

func TestNewUser_HashesPassword(t *testing.T) {
	u, err := NewUser("Admin", "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
	assert.True(t, u.CheckPassword("correct horse"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUser_ShortPassword(t *testing.T) {
	_, err := NewUser("Admin", "admin@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
