package media

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSave_NamesFileWithTimestampPrefix(t *testing.T) {
	store := setupTestStore(t)

	file, err := store.Save(strings.NewReader("png bytes"), "my photo!.png", "image/png")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+-my_photo_\.png$`), file.Name)
	assert.Equal(t, int64(len("png bytes")), file.Size)

	data, err := os.ReadFile(filepath.Join(store.Dir(), file.Name))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestSave_RejectsDisallowedType(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Save(strings.NewReader("#!/bin/sh"), "script.sh", "application/x-sh")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Save(strings.NewReader("<html>"), "page.html", "text/html")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSave_RejectsSVG(t *testing.T) {
	store := setupTestStore(t)

	// SVG can carry script and would be served from the site origin.
	_, err := store.Save(strings.NewReader("<svg onload=alert(1)></svg>"), "logo.svg", "image/svg+xml")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSave_RejectsOversizedPayload(t *testing.T) {
	store := setupTestStore(t)

	oversized := io.MultiReader(
		bytes.NewReader(make([]byte, MaxUploadSize)),
		strings.NewReader("x"),
	)

	_, err := store.Save(oversized, "big.png", "image/png")
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	// No partial file left behind.
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_AcceptsExactlyMaxSize(t *testing.T) {
	store := setupTestStore(t)

	file, err := store.Save(bytes.NewReader(make([]byte, MaxUploadSize)), "exact.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, int64(MaxUploadSize), file.Size)
}

func TestOpen_ReturnsStoredContent(t *testing.T) {
	store := setupTestStore(t)

	file, err := store.Save(strings.NewReader("catalog"), "katalog.pdf", "application/pdf")
	require.NoError(t, err)

	f, err := store.Open(file.Name)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "catalog", string(data))
}

func TestOpen_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Open("123-missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTraversalGuard(t *testing.T) {
	store := setupTestStore(t)

	for _, name := range []string{
		"../etc/passwd",
		"..",
		"a/b.png",
		`a\b.png`,
		"",
	} {
		_, err := store.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, "open %q", name)

		err = store.Delete(name)
		assert.ErrorIs(t, err, ErrInvalidName, "delete %q", name)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	store := setupTestStore(t)

	file, err := store.Save(strings.NewReader("data"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, store.Delete(file.Name))

	// Deleting again is still fine.
	require.NoError(t, store.Delete(file.Name))

	_, err = store.Open(file.Name)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_ImagesNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	// Write files directly so the timestamp prefixes are deterministic.
	for _, name := range []string{"100-old.png", "300-new.jpg", "200-mid.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), name), []byte("x"), 0o640))
	}
	// Non-image files are excluded from the listing.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "150-doc.pdf"), []byte("x"), 0o640))

	files, err := store.List()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "300-new.jpg", files[0].Name)
	assert.Equal(t, "200-mid.webp", files[1].Name)
	assert.Equal(t, "100-old.png", files[2].Name)
}

func TestNameFromURL(t *testing.T) {
	assert.Equal(t, "123-photo.png", NameFromURL("/uploads/123-photo.png"))
	assert.Equal(t, "123-photo.png", NameFromURL("123-photo.png"))
	assert.Equal(t, "", NameFromURL("https://cdn.example.com/123-photo.png"))
	assert.Equal(t, "", NameFromURL(""))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("123-a.png"))
	assert.Equal(t, "image/jpeg", ContentType("123-a.JPG"))
	assert.Equal(t, "application/pdf", ContentType("123-a.pdf"))
	assert.Equal(t, "image/webp", ContentType("123-a.webp"))
	assert.Equal(t, "application/octet-stream", ContentType("123-a.bin"))
}
