package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus enumerates team entry-fee payment states. Intended as a
// pending -> paid -> verified progression, but the admin setter accepts any
// target value regardless of the current one.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentVerified PaymentStatus = "verified"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentVerified:
		return true
	}
	return false
}

// TeamPlayer is one denormalized entry in Team.Players: a snapshot of the
// referenced player taken at registration time, never refreshed.
type TeamPlayer struct {
	PlayerID       uuid.UUID `json:"playerId"`
	PlayerName     string    `json:"playerName"`
	PlayerUniqueID string    `json:"playerUniqueId"`
}

// Team represents a teams row. At most one team may exist per
// (tournament, owner) pair.
type Team struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	OwnerID          uuid.UUID     `json:"owner_id"`
	OwnerUniqueID    string        `json:"owner_unique_id"`
	Players          []TeamPlayer  `json:"players"`
	TournamentID     uuid.UUID     `json:"tournament_id"`
	RegistrationDate time.Time     `json:"registration_date"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
}

// TeamWithTournament attaches the tournament a team is registered in, for
// the "my teams" listing.
type TeamWithTournament struct {
	Team
	Tournament *Tournament `json:"tournament,omitempty"`
}
