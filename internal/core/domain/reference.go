package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reference is a customer logo shown on the references page. No slug;
// references are addressed by ID only.
type Reference struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewReference creates an active reference with a generated ID.
func NewReference(name string) (*Reference, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	now := time.Now()
	return &Reference{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
