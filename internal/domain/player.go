package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hand enumerates batting/bowling handedness.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)

// ValidHand reports whether h is a known handedness value.
func ValidHand(h Hand) bool {
	return h == HandLeft || h == HandRight
}

// Player is the cricket profile extension of a User. Exactly one per user,
// enforced by a unique index on user_id.
type Player struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Photo          string    `json:"photo,omitempty"`
	Age            int       `json:"age"`
	Area           string    `json:"area"`
	BattingHand    Hand      `json:"batting_hand"`
	BowlingHand    Hand      `json:"bowling_hand"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlayerWithOwner joins a player profile with the owning user's display
// fields for the public roster listing.
type PlayerWithOwner struct {
	Player
	OwnerName     string `json:"owner_name,omitempty"`
	OwnerUniqueID string `json:"owner_unique_id,omitempty"`
}
