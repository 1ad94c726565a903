package domain

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide is one slide of the homepage hero carousel.
type HeroSlide struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image"`
	CTAText   string    `json:"cta_text,omitempty"`
	CTALink   string    `json:"cta_link,omitempty"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHeroSlide creates an active slide with a generated ID. The image is
// mandatory; a slide without one renders as an empty band.
func NewHeroSlide(title, image string) (*HeroSlide, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if image == "" {
		return nil, ErrImageRequired
	}
	now := time.Now()
	return &HeroSlide{
		ID:        uuid.New().String(),
		Title:     title,
		Image:     image,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
