package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note from a member to the admin inbox. Sender name and member
// ID are snapshots taken at send time.
type Message struct {
	ID               uuid.UUID  `json:"id"`
	FromUserID       uuid.UUID  `json:"from_user_id"`
	FromUserName     string     `json:"from_user_name"`
	FromUserUniqueID string     `json:"from_user_unique_id"`
	Subject          string     `json:"subject"`
	Content          string     `json:"content"`
	IsRead           bool       `json:"is_read"`
	AdminResponse    string     `json:"admin_response,omitempty"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
