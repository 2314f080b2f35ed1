package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventProfileCompleted     EventType = "bgc.user.profile.completed"
	EventPhoneVerified        EventType = "bgc.user.phone.verified"
	EventTeamRegistered       EventType = "bgc.team.registered"
	EventPaymentStatusUpdated EventType = "bgc.team.payment.updated"
	EventTournamentStatus     EventType = "bgc.tournament.status.updated"
	EventMatchScoreUpdated    EventType = "bgc.match.score.updated"
	EventMessageResponded     EventType = "bgc.message.responded"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateUser       AggregateType = "user"
	AggregateTeam       AggregateType = "team"
	AggregateTournament AggregateType = "tournament"
	AggregateMatch      AggregateType = "match"
	AggregateMessage    AggregateType = "message"
)

// OutboxDraft is the payload written to the event_outbox table, in the same
// transaction as the mutation it describes.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateType AggregateType   `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     EventType       `json:"event_type"`
	PartitionKey  string          `json:"partition_key"`
	Headers       json.RawMessage `json:"headers"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
