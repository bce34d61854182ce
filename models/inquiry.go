package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a public contact-form submission. IsChecked is the
// reviewed flag admins toggle from the panel.
type Inquiry struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsChecked bool      `json:"is_checked"`
	CreatedAt time.Time `json:"created_at"`
}
