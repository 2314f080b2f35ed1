package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates account roles. Everyone starts as RoleUser; completing the
// club profile promotes to RolePlayer; RoleAdmin is granted explicitly.
type Role string

const (
	RoleUser   Role = "user"
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RolePlayer, RoleAdmin:
		return true
	}
	return false
}

// User represents a users row. UniqueID is the human-readable club member ID
// (BGC001, BGC002, ...) assigned once at profile completion.
type User struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FullName        string    `json:"full_name,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	UniqueID        string    `json:"unique_id,omitempty"`
	Role            Role      `json:"role"`
	IsPhoneVerified bool      `json:"is_phone_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasMemberID reports whether the user finished profile completion and holds
// a club member ID. Several operations require this beyond plain authentication.
func (u *User) HasMemberID() bool {
	return u != nil && u.UniqueID != ""
}
