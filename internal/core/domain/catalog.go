package domain

import (
	"time"

	"github.com/google/uuid"
)

// Catalog is a downloadable PDF catalog with an optional cover image.
type Catalog struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileURL    string    `json:"file_url"`
	CoverImage string    `json:"cover_image,omitempty"`
	Order      int       `json:"order"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCatalog creates an active catalog entry with a generated ID.
func NewCatalog(name, fileURL string) (*Catalog, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if fileURL == "" {
		return nil, ErrFileURLRequired
	}
	now := time.Now()
	return &Catalog{
		ID:        uuid.New().String(),
		Name:      name,
		FileURL:   fileURL,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
