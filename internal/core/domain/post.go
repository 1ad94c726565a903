package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Post
// =============================================================================

// Post is a blog entry. The slug is derived from the title and is unique
// among posts.
type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	Image           string     `json:"image,omitempty"`
	Published       bool       `json:"published"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	CategoryID      string     `json:"category_id,omitempty"`
	AuthorID        string     `json:"author_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewPost creates a draft post with a generated ID and slug.
func NewPost(title, content string) (*Post, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	slug := Slugify(title)
	if slug == "" {
		return nil, ErrEmptySlug
	}

	now := time.Now()
	return &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      slug,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Retitle changes the post title, recomputing the slug only when the title
// actually changed.
func (p *Post) Retitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if title == p.Title {
		return nil
	}
	slug := Slugify(title)
	if slug == "" {
		return ErrEmptySlug
	}
	p.Title = title
	p.Slug = slug
	return nil
}

// Publish marks the post published, stamping PublishedAt on the first
// publication only.
func (p *Post) Publish(at time.Time) {
	p.Published = true
	if p.PublishedAt == nil {
		p.PublishedAt = &at
	}
}

// Unpublish returns the post to draft state. PublishedAt is kept so a
// republished post retains its original publication date.
func (p *Post) Unpublish() {
	p.Published = false
}
