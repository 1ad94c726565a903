// Package domain contains the core content types and slug logic.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNameRequired is returned when an entity name is missing.
	ErrNameRequired = errors.New("name is required")

	// ErrTitleRequired is returned when a post or slide title is missing.
	ErrTitleRequired = errors.New("title is required")

	// ErrEmptySlug is returned when a name reduces to an empty slug
	// (for example a name made of punctuation only).
	ErrEmptySlug = errors.New("name does not produce a valid URL slug")

	// ErrImageRequired is returned when a hero slide has no image.
	ErrImageRequired = errors.New("image is required")

	// ErrFileURLRequired is returned when a catalog has no file.
	ErrFileURLRequired = errors.New("file URL is required")

	// ErrContentRequired is returned when a post has no body.
	ErrContentRequired = errors.New("content is required")
)

// =============================================================================
// Category
// =============================================================================

// Category groups products on the public catalog. Its slug is derived from
// the name and is unique among categories.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory creates a category with a generated ID and slug.
// Returns an error if the name is missing or slugs to nothing.
func NewCategory(name, description, image string) (*Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrEmptySlug
	}

	now := time.Now()
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: description,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename changes the category name. The slug is recomputed only when the
// name actually changed; renaming to the current name is a no-op.
func (c *Category) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if name == c.Name {
		return nil
	}
	slug := Slugify(name)
	if slug == "" {
		return ErrEmptySlug
	}
	c.Name = name
	c.Slug = slug
	return nil
}
