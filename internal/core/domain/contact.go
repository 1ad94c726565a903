package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmailRequired is returned when a contact submission has no email.
	ErrEmailRequired = errors.New("email is required")

	// ErrMessageRequired is returned when a contact submission has no body.
	ErrMessageRequired = errors.New("message is required")
)

// ContactMessage is one submission of the public contact form. Messages land
// in the admin inbox and carry a read flag.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessage validates the required fields and creates an unread
// message with a generated ID.
func NewContactMessage(name, email, phone, message string) (*ContactMessage, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if message == "" {
		return nil, ErrMessageRequired
	}
	return &ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}
