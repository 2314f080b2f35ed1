package repository

import (
	"context"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/policy"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// UserRepository provides access to users.
type UserRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.User, error)
	Create(ctx context.Context, db DBTX, user *domain.User) error

	// NextMemberID draws the next sequential club member ID (BGC001, ...).
	NextMemberID(ctx context.Context, db DBTX) (string, error)

	// CompleteProfile sets name, phone and member ID, and promotes the role
	// to player. The member ID is assigned exactly once.
	CompleteProfile(ctx context.Context, db DBTX, id uuid.UUID, fullName, phone, memberID string) (*domain.User, error)

	SetPhoneVerified(ctx context.Context, db DBTX, id uuid.UUID) error
	SetRole(ctx context.Context, db DBTX, id uuid.UUID, role domain.Role) error
}

// PlayerRepository provides access to players (cricket profiles).
type PlayerRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Player, error)
	FindByUser(ctx context.Context, db DBTX, userID uuid.UUID) (*domain.Player, error)
	Create(ctx context.Context, db DBTX, player *domain.Player) error
	Update(ctx context.Context, db DBTX, player *domain.Player) error

	// ListActive returns active profiles joined with owner name and member ID.
	ListActive(ctx context.Context, db DBTX) ([]domain.PlayerWithOwner, error)
}

// TournamentRepository provides access to tournaments.
type TournamentRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Tournament, error)

	// LockForUpdate acquires a row-level lock (SELECT FOR UPDATE). Taken at
	// the top of the registration transaction so concurrent registrations
	// for the same tournament serialize on the capacity check.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Tournament, error)

	Create(ctx context.Context, db DBTX, t *domain.Tournament) error
	ListByStatus(ctx context.Context, db DBTX, status domain.TournamentStatus) ([]domain.Tournament, error)
	ListByCreator(ctx context.Context, db DBTX, createdBy uuid.UUID) ([]domain.Tournament, error)
	UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status domain.TournamentStatus) error
}

// TeamRepository provides access to teams.
type TeamRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Team, error)
	FindByTournamentAndOwner(ctx context.Context, db DBTX, tournamentID, ownerID uuid.UUID) (*domain.Team, error)
	CountByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) (int, error)
	Insert(ctx context.Context, db DBTX, team *domain.Team) error
	ListByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]domain.Team, error)
	ListByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) ([]domain.Team, error)
	UpdatePaymentStatus(ctx context.Context, db DBTX, id uuid.UUID, status domain.PaymentStatus) error
}

// MatchRepository provides access to matches.
type MatchRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Match, error)
	Insert(ctx context.Context, db DBTX, m *domain.Match) error
	ListByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) ([]domain.Match, error)
	ListByStatus(ctx context.Context, db DBTX, status domain.MatchStatus) ([]domain.Match, error)

	// ApplyScorePatch updates only the fields present in the patch using
	// dynamic SET clauses, records updated_by, and returns the updated row.
	ApplyScorePatch(ctx context.Context, db DBTX, id uuid.UUID, patch policy.ScorePatch, updatedBy uuid.UUID) (*domain.Match, error)
}

// MessageRepository provides access to the admin inbox.
type MessageRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Message, error)
	Insert(ctx context.Context, db DBTX, m *domain.Message) error
	ListAll(ctx context.Context, db DBTX) ([]domain.Message, error)
	CountUnread(ctx context.Context, db DBTX) (int, error)

	// MarkRead sets is_read=true. Idempotent: marking an already-read
	// message succeeds and changes nothing.
	MarkRead(ctx context.Context, db DBTX, id uuid.UUID) error

	// Respond stores the admin response, stamps responded_at and forces
	// is_read=true. Returns the updated row.
	Respond(ctx context.Context, db DBTX, id uuid.UUID, response string) (*domain.Message, error)
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event (within the same transaction as the
	// mutation it describes).
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublishedRows returns unpublished events for the poller.
	FetchUnpublishedRows(ctx context.Context, db DBTX, limit int) ([]OutboxRow, error)

	// MarkPublished stamps events as published.
	MarkPublished(ctx context.Context, db DBTX, ids []int64) error
}

// OutboxRow is an outbox event together with its sequence ID.
type OutboxRow struct {
	SeqID int64
	domain.OutboxDraft
}
