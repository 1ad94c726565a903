// Package media stores uploaded files on the local filesystem. Files are
// written under a single flat directory with timestamp-prefixed names and
// served back by name.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// Constants and Errors
// =============================================================================

// MaxUploadSize is the upload size cap in bytes (5 MiB).
const MaxUploadSize = 5 << 20

var (
	// ErrUnsupportedType is returned for uploads outside the MIME allowlist.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrPayloadTooLarge is returned for uploads over MaxUploadSize.
	ErrPayloadTooLarge = errors.New("file exceeds maximum upload size")

	// ErrNotFound is returned when opening a file that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidName is returned for names that could escape the upload
	// directory.
	ErrInvalidName = errors.New("invalid file name")
)

// allowedTypes is the upload MIME allowlist.
var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// contentTypes maps stored file extensions to the MIME type used when
// serving. Unknown extensions fall back to application/octet-stream.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

// imageExtensions marks stored extensions that count as images for listing.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// =============================================================================
// Store
// =============================================================================

// File describes one stored upload.
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Store is a flat directory of uploaded files.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an upload to disk and returns the stored file. The declared
// content type must be on the allowlist and the payload must fit within
// MaxUploadSize. The stored name is the upload timestamp in milliseconds,
// a hyphen, then the sanitized original base name and its extension.
//
// The write goes to a temp file first and is renamed into place, so a
// failed upload never leaves a partial file behind.
func (s *Store) Save(r io.Reader, originalName, contentType string) (*File, error) {
	if !allowedTypes[contentType] {
		return nil, ErrUnsupportedType
	}

	name := storageName(originalName)
	if err := validateName(name); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, name)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	// Copy one byte past the cap so oversized payloads are detected
	// without reading the whole stream.
	size, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if size > MaxUploadSize {
		f.Close()
		os.Remove(tmpPath)
		return nil, ErrPayloadTooLarge
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to sync upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close upload: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	return &File{Name: name, Size: size}, nil
}

// Open returns a reader over a stored file. The caller must close it.
func (s *Store) Open(name string) (*os.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file %s: %w", name, err)
	}
	return f, nil
}

// Delete removes a stored file. Deleting a file that does not exist is not
// an error.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", name, err)
	}
	return nil
}

// List returns stored image files, newest first by the timestamp prefix of
// the stored name. Non-image files (PDFs, stray temp files) are skipped.
func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, File{Name: entry.Name(), Size: info.Size()})
	}

	sort.Slice(files, func(i, j int) bool {
		ti, tj := namePrefix(files[i].Name), namePrefix(files[j].Name)
		if ti != tj {
			return ti > tj
		}
		return files[i].Name > files[j].Name
	})

	return files, nil
}

// ContentType returns the MIME type a stored file is served with, based on
// its extension.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// =============================================================================
// Naming
// =============================================================================

// storageName builds the on-disk name for an upload: millisecond timestamp,
// hyphen, then the sanitized original name. Dots and hyphens survive so the
// extension stays intact; everything else becomes an underscore.
func storageName(originalName string) string {
	sanitized := unsafeNameChars.ReplaceAllString(filepath.Base(originalName), "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitized)
}

// validateName rejects names that could address files outside the upload
// directory.
func validateName(name string) error {
	if name == "" ||
		strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	return nil
}

// NameFromURL reduces a stored-file URL like "/uploads/123-photo.png" to the
// bare file name. External URLs and empty strings reduce to "".
func NameFromURL(url string) string {
	if url == "" || strings.Contains(url, "://") {
		return ""
	}
	name := filepath.Base(strings.ReplaceAll(url, `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// namePrefix extracts the leading timestamp from a stored name; files
// without one sort last.
func namePrefix(name string) int64 {
	prefix, _, ok := strings.Cut(name, "-")
	if !ok {
		return 0
	}
	ts, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
