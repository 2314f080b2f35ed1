package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus enumerates match lifecycle states: upcoming -> live ->
// completed. Completed is terminal in intent; the score patch does not
// enforce forward-only movement.
type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
)

// ValidMatchStatus reports whether s is a known match status.
func ValidMatchStatus(s MatchStatus) bool {
	switch s {
	case MatchUpcoming, MatchLive, MatchCompleted:
		return true
	}
	return false
}

// BattingSide identifies which team is currently batting.
type BattingSide string

const (
	BattingTeam1 BattingSide = "team1"
	BattingTeam2 BattingSide = "team2"
)

// ValidBattingSide reports whether s is a known batting side.
func ValidBattingSide(s BattingSide) bool {
	return s == BattingTeam1 || s == BattingTeam2
}

// Match represents a matches row. Team names are snapshots resolved at
// creation time and never refreshed if a team is renamed. Scores and overs
// are free-text scoreboard fields ("145/7", "18.3"), not parsed server-side.
type Match struct {
	ID             uuid.UUID   `json:"id"`
	TournamentID   uuid.UUID   `json:"tournament_id"`
	Team1ID        uuid.UUID   `json:"team1_id"`
	Team2ID        uuid.UUID   `json:"team2_id"`
	Team1Name      string      `json:"team1_name"`
	Team2Name      string      `json:"team2_name"`
	MatchDate      string      `json:"match_date"`
	Status         MatchStatus `json:"status"`
	Team1Score     string      `json:"team1_score,omitempty"`
	Team2Score     string      `json:"team2_score,omitempty"`
	Team1Overs     string      `json:"team1_overs,omitempty"`
	Team2Overs     string      `json:"team2_overs,omitempty"`
	CurrentBatting BattingSide `json:"current_batting,omitempty"`
	Winner         string      `json:"winner,omitempty"`
	UpdatedBy      uuid.UUID   `json:"updated_by"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
