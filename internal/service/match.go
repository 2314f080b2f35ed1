package service

import (
	"context"
	"log/slog"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/policy"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MatchService handles match scheduling and the live scoreboard.
type MatchService struct {
	pool        *pgxpool.Pool
	users       repository.UserRepository
	tournaments repository.TournamentRepository
	teams       repository.TeamRepository
	matches     repository.MatchRepository
	outbox      repository.OutboxRepository
	logger      *slog.Logger
}

// NewMatchService creates a MatchService.
func NewMatchService(
	pool *pgxpool.Pool,
	users repository.UserRepository,
	tournaments repository.TournamentRepository,
	teams repository.TeamRepository,
	matches repository.MatchRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *MatchService {
	return &MatchService{
		pool:        pool,
		users:       users,
		tournaments: tournaments,
		teams:       teams,
		matches:     matches,
		outbox:      outbox,
		logger:      logger,
	}
}

// CreateMatchInput holds the match scheduling fields.
type CreateMatchInput struct {
	TournamentID uuid.UUID `json:"tournament_id"`
	Team1ID      uuid.UUID `json:"team1_id"`
	Team2ID      uuid.UUID `json:"team2_id"`
	MatchDate    string    `json:"match_date"`
}

// Create schedules a match between two registered teams. Admin only. Team
// names are snapshotted at creation and not refreshed afterwards.
func (s *MatchService) Create(ctx context.Context, callerID uuid.UUID, input CreateMatchInput) (*domain.Match, error) {
	if input.Team1ID == input.Team2ID {
		return nil, domain.ErrValidation("a match needs two distinct teams")
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tournament, err := s.tournaments.FindByID(ctx, s.pool, input.TournamentID)
	if err != nil {
		return nil, domain.ErrInternal("find tournament", err)
	}
	if tournament == nil {
		return nil, domain.ErrNotFound("tournament", input.TournamentID.String())
	}
	if !tournament.AcceptsMatches() {
		return nil, domain.ErrConflict("tournament does not accept new matches")
	}

	team1, err := s.teamInTournament(ctx, input.Team1ID, input.TournamentID)
	if err != nil {
		return nil, err
	}
	team2, err := s.teamInTournament(ctx, input.Team2ID, input.TournamentID)
	if err != nil {
		return nil, err
	}

	match := &domain.Match{
		ID:           uuid.New(),
		TournamentID: input.TournamentID,
		Team1ID:      team1.ID,
		Team2ID:      team2.ID,
		Team1Name:    team1.Name,
		Team2Name:    team2.Name,
		MatchDate:    input.MatchDate,
		Status:       domain.MatchUpcoming,
		UpdatedBy:    callerID,
	}
	if err := s.matches.Insert(ctx, s.pool, match); err != nil {
		return nil, domain.ErrInternal("insert match", err)
	}

	s.logger.Info("match created", "match_id", match.ID, "tournament_id", input.TournamentID)
	return match, nil
}

func (s *MatchService) teamInTournament(ctx context.Context, teamID, tournamentID uuid.UUID) (*domain.Team, error) {
	team, err := s.teams.FindByID(ctx, s.pool, teamID)
	if err != nil {
		return nil, domain.ErrInternal("find team", err)
	}
	if team == nil {
		return nil, domain.ErrNotFound("team", teamID.String())
	}
	if team.TournamentID != tournamentID {
		return nil, domain.ErrValidation("team " + teamID.String() + " is not registered in this tournament")
	}
	return team, nil
}

// Get returns one match.
func (s *MatchService) Get(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matches.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find match", err)
	}
	if match == nil {
		return nil, domain.ErrNotFound("match", id.String())
	}
	return match, nil
}

// ListByTournament returns a tournament's matches in creation order.
func (s *MatchService) ListByTournament(ctx context.Context, tournamentID uuid.UUID) ([]domain.Match, error) {
	matches, err := s.matches.ListByTournament(ctx, s.pool, tournamentID)
	if err != nil {
		return nil, domain.ErrInternal("list matches", err)
	}
	return matches, nil
}

// ListByStatus returns matches in the given state (the live scoreboard feed).
func (s *MatchService) ListByStatus(ctx context.Context, status domain.MatchStatus) ([]domain.Match, error) {
	if !domain.ValidMatchStatus(status) {
		return nil, domain.ErrValidation("invalid match status: " + string(status))
	}
	matches, err := s.matches.ListByStatus(ctx, s.pool, status)
	if err != nil {
		return nil, domain.ErrInternal("list matches", err)
	}
	return matches, nil
}

// UpdateScore applies a partial scoreboard update. Admin only. Absent fields
// stay untouched; every accepted patch stamps updated_by.
func (s *MatchService) UpdateScore(ctx context.Context, callerID, matchID uuid.UUID, patch policy.ScorePatch) (*domain.Match, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	match, err := s.matches.ApplyScorePatch(ctx, tx, matchID, patch, callerID)
	if err != nil {
		return nil, domain.ErrInternal("apply score patch", err)
	}
	if match == nil {
		return nil, domain.ErrNotFound("match", matchID.String())
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewMatchScoreEvent(match)); err != nil {
		return nil, domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("match score updated", "match_id", matchID, "by", callerID)
	return match, nil
}
