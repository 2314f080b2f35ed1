package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

func newDraft(agg AggregateType, aggID string, evt EventType, payload []byte) OutboxDraft {
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: agg,
		AggregateID:   aggID,
		EventType:     evt,
		PartitionKey:  aggID,
		Headers:       json.RawMessage(`{}`),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewTeamRegisteredEvent records a committed team registration.
func NewTeamRegisteredEvent(team *Team) OutboxDraft {
	payload, _ := json.Marshal(team)
	return newDraft(AggregateTeam, team.ID.String(), EventTeamRegistered, payload)
}

// NewPaymentStatusEvent records an admin payment-status change on a team.
func NewPaymentStatusEvent(teamID uuid.UUID, status PaymentStatus, updatedBy uuid.UUID) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"team_id":        teamID.String(),
		"payment_status": string(status),
		"updated_by":     updatedBy.String(),
	})
	return newDraft(AggregateTeam, teamID.String(), EventPaymentStatusUpdated, payload)
}

// NewTournamentStatusEvent records an admin tournament-status change.
func NewTournamentStatusEvent(tournamentID uuid.UUID, status TournamentStatus, updatedBy uuid.UUID) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"tournament_id": tournamentID.String(),
		"status":        string(status),
		"updated_by":    updatedBy.String(),
	})
	return newDraft(AggregateTournament, tournamentID.String(), EventTournamentStatus, payload)
}

// NewMatchScoreEvent records a scoreboard update.
func NewMatchScoreEvent(match *Match) OutboxDraft {
	payload, _ := json.Marshal(match)
	return newDraft(AggregateMatch, match.ID.String(), EventMatchScoreUpdated, payload)
}

// NewMessageRespondedEvent records an admin response to an inbox message.
func NewMessageRespondedEvent(messageID, adminID uuid.UUID) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"message_id":   messageID.String(),
		"responded_by": adminID.String(),
	})
	return newDraft(AggregateMessage, messageID.String(), EventMessageResponded, payload)
}

// NewPhoneVerifiedEvent records a successful phone verification.
func NewPhoneVerifiedEvent(userID uuid.UUID) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"user_id": userID.String(),
	})
	return newDraft(AggregateUser, userID.String(), EventPhoneVerified, payload)
}

// NewProfileCompletedEvent records a member ID assignment.
func NewProfileCompletedEvent(userID uuid.UUID, memberID string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"user_id":   userID.String(),
		"member_id": memberID,
	})
	return newDraft(AggregateUser, userID.String(), EventProfileCompleted, payload)
}
