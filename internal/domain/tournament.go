package domain

import (
	"time"

	"github.com/google/uuid"
)

// TournamentStatus enumerates tournament lifecycle states. Transitions are
// admin-only and unconstrained: any status is reachable from any other.
type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentOngoing   TournamentStatus = "ongoing"
	TournamentCompleted TournamentStatus = "completed"
	TournamentCancelled TournamentStatus = "cancelled"
)

// ValidTournamentStatus reports whether s is a known tournament status.
func ValidTournamentStatus(s TournamentStatus) bool {
	switch s {
	case TournamentUpcoming, TournamentOngoing, TournamentCompleted, TournamentCancelled:
		return true
	}
	return false
}

// Tournament represents a tournaments row. Dates and the registration
// deadline are kept as display strings; only the status gates registration.
type Tournament struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description,omitempty"`
	MaxTeams             int              `json:"max_teams"`
	EntryFeePerPerson    int64            `json:"entry_fee_per_person"`
	Rewards              string           `json:"rewards"`
	GroundPhotos         []string         `json:"ground_photos,omitempty"`
	TrophyPhotos         []string         `json:"trophy_photos,omitempty"`
	Date                 string           `json:"date"`
	Location             string           `json:"location"`
	MapLink              string           `json:"map_link,omitempty"`
	OversPerMatch        int              `json:"overs_per_match"`
	UpiID                string           `json:"upi_id"`
	Status               TournamentStatus `json:"status"`
	RegistrationDeadline string           `json:"registration_deadline"`
	CreatedBy            uuid.UUID        `json:"created_by"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// AcceptsRegistrations reports whether teams may register. The stored
// registration deadline is advisory only and deliberately not checked here.
func (t *Tournament) AcceptsRegistrations() bool {
	return t != nil && t.Status == TournamentUpcoming
}

// AcceptsMatches reports whether new matches may be scheduled against the
// tournament.
func (t *Tournament) AcceptsMatches() bool {
	return t != nil && (t.Status == TournamentUpcoming || t.Status == TournamentOngoing)
}
