package contact

import "time"

// ContactMessage is a visitor message sent through the public contact form.
// Read and archived are independent flags: an unread message may be archived,
// and archiving does not imply it was read.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    *string   `json:"subject"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)
