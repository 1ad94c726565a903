package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Product
// =============================================================================

// ProductImage is one gallery image attached to a product. URL points at the
// media store; the store itself has no knowledge of the owning product.
type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Product is a catalog item (a concrete mold). The slug is derived from the
// name and is unique among products.
type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Slug            string         `json:"slug"`
	Description     string         `json:"description,omitempty"`
	Content         string         `json:"content,omitempty"`
	Dimensions      string         `json:"dimensions,omitempty"`
	Weight          string         `json:"weight,omitempty"`
	Material        string         `json:"material,omitempty"`
	MetaTitle       string         `json:"meta_title,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
	VideoURL        string         `json:"video_url,omitempty"`
	CategoryID      string         `json:"category_id"`
	Featured        bool           `json:"featured"`
	Order           int            `json:"order"`
	Images          []ProductImage `json:"images,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewProduct creates a product with a generated ID and slug.
func NewProduct(name, categoryID string) (*Product, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrEmptySlug
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		Name:       name,
		Slug:       slug,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Rename changes the product name, recomputing the slug only when the name
// actually changed. Renaming to the current name keeps the stored slug.
func (p *Product) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if name == p.Name {
		return nil
	}
	slug := Slugify(name)
	if slug == "" {
		return ErrEmptySlug
	}
	p.Name = name
	p.Slug = slug
	return nil
}

// SetImages replaces the gallery with the given URLs, assigning fresh IDs.
func (p *Product) SetImages(urls []string) {
	p.Images = make([]ProductImage, 0, len(urls))
	for _, u := range urls {
		p.Images = append(p.Images, ProductImage{
			ID:  uuid.New().String(),
			URL: u,
		})
	}
}

// ImageURLs returns the gallery URLs in order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
