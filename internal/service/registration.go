package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/policy"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationService handles team registration into tournaments and the
// team listings that follow from it.
type RegistrationService struct {
	pool        *pgxpool.Pool
	users       repository.UserRepository
	tournaments repository.TournamentRepository
	teams       repository.TeamRepository
	outbox      repository.OutboxRepository
	logger      *slog.Logger
}

// NewRegistrationService creates a RegistrationService.
func NewRegistrationService(
	pool *pgxpool.Pool,
	users repository.UserRepository,
	tournaments repository.TournamentRepository,
	teams repository.TeamRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		pool:        pool,
		users:       users,
		tournaments: tournaments,
		teams:       teams,
		outbox:      outbox,
		logger:      logger,
	}
}

// RegisterTeamInput holds the registration request fields. The roster is the
// caller's denormalized snapshot and is stored verbatim; entries are not
// checked against the players table and may repeat.
type RegisterTeamInput struct {
	TournamentID uuid.UUID           `json:"tournament_id"`
	Name         string              `json:"name"`
	Players      []domain.TeamPlayer `json:"players"`
}

// RegisterTeam registers a team. The whole decision runs in one transaction
// holding a row lock on the tournament, so two concurrent registrations for
// the last slot serialize and exactly one wins. Rejections are checked in a
// fixed order: identity, tournament open, duplicate, capacity.
func (s *RegistrationService) RegisterTeam(ctx context.Context, callerID uuid.UUID, input RegisterTeamInput) (*domain.Team, error) {
	if input.Name == "" {
		return nil, domain.ErrValidation("team name is required")
	}
	if len(input.Players) == 0 {
		return nil, domain.ErrValidation("team must list at least one player")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	caller, err := s.users.FindByID(ctx, tx, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}

	// A missing tournament falls through to the policy as nil, which reports
	// it as not open, same as a closed one.
	tournament, err := s.tournaments.LockForUpdate(ctx, tx, input.TournamentID)
	if err != nil {
		return nil, domain.ErrInternal("lock tournament", err)
	}

	existing, err := s.teams.FindByTournamentAndOwner(ctx, tx, input.TournamentID, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find existing team", err)
	}
	count, err := s.teams.CountByTournament(ctx, tx, input.TournamentID)
	if err != nil {
		return nil, domain.ErrInternal("count teams", err)
	}

	if err := policy.EvaluateRegistration(policy.RegistrationState{
		Caller:            caller,
		Tournament:        tournament,
		AlreadyRegistered: existing != nil,
		TeamCount:         count,
	}); err != nil {
		return nil, err
	}

	team := &domain.Team{
		ID:               uuid.New(),
		Name:             input.Name,
		OwnerID:          callerID,
		OwnerUniqueID:    caller.UniqueID,
		Players:          input.Players,
		TournamentID:     input.TournamentID,
		RegistrationDate: time.Now(),
		PaymentStatus:    domain.PaymentPending,
	}
	if err := s.teams.Insert(ctx, tx, team); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateRegistration()
		}
		return nil, domain.ErrInternal("insert team", err)
	}

	if err := s.outbox.Insert(ctx, tx, domain.NewTeamRegisteredEvent(team)); err != nil {
		return nil, domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("team registered",
		"team_id", team.ID, "tournament_id", input.TournamentID, "owner", caller.UniqueID)
	return team, nil
}

// GetTeam returns one team.
func (s *RegistrationService) GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, err := s.teams.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find team", err)
	}
	if team == nil {
		return nil, domain.ErrNotFound("team", id.String())
	}
	return team, nil
}

// ListMyTeams returns the caller's teams with each team's tournament attached.
func (s *RegistrationService) ListMyTeams(ctx context.Context, callerID uuid.UUID) ([]domain.TeamWithTournament, error) {
	teams, err := s.teams.ListByOwner(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("list teams", err)
	}

	out := make([]domain.TeamWithTournament, 0, len(teams))
	for _, team := range teams {
		tournament, err := s.tournaments.FindByID(ctx, s.pool, team.TournamentID)
		if err != nil {
			return nil, domain.ErrInternal("find tournament", err)
		}
		out = append(out, domain.TeamWithTournament{Team: team, Tournament: tournament})
	}
	return out, nil
}

// ListTournamentTeams returns all teams registered in a tournament, in
// registration order.
func (s *RegistrationService) ListTournamentTeams(ctx context.Context, tournamentID uuid.UUID) ([]domain.Team, error) {
	teams, err := s.teams.ListByTournament(ctx, s.pool, tournamentID)
	if err != nil {
		return nil, domain.ErrInternal("list teams", err)
	}
	return teams, nil
}

// UpdatePaymentStatus sets a team's entry-fee payment status. Admin only; any
// known status is accepted regardless of the current one.
func (s *RegistrationService) UpdatePaymentStatus(ctx context.Context, callerID, teamID uuid.UUID, status domain.PaymentStatus) error {
	if !domain.ValidPaymentStatus(status) {
		return domain.ErrValidation("invalid payment status: " + string(status))
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.teams.UpdatePaymentStatus(ctx, tx, teamID, status); err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound("team", teamID.String())
		}
		return domain.ErrInternal("update payment status", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPaymentStatusEvent(teamID, status, callerID)); err != nil {
		return domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("payment status updated", "team_id", teamID, "status", status, "by", callerID)
	return nil
}
