package service

import (
	"context"
	"log/slog"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TournamentService handles tournament creation, listing and lifecycle.
type TournamentService struct {
	pool        *pgxpool.Pool
	users       repository.UserRepository
	tournaments repository.TournamentRepository
	outbox      repository.OutboxRepository
	logger      *slog.Logger
}

// NewTournamentService creates a TournamentService.
func NewTournamentService(
	pool *pgxpool.Pool,
	users repository.UserRepository,
	tournaments repository.TournamentRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *TournamentService {
	return &TournamentService{
		pool:        pool,
		users:       users,
		tournaments: tournaments,
		outbox:      outbox,
		logger:      logger,
	}
}

// TournamentInput holds the tournament creation fields.
type TournamentInput struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	MaxTeams             int      `json:"max_teams"`
	EntryFeePerPerson    int64    `json:"entry_fee_per_person"`
	Rewards              string   `json:"rewards"`
	GroundPhotos         []string `json:"ground_photos"`
	TrophyPhotos         []string `json:"trophy_photos"`
	Date                 string   `json:"date"`
	Location             string   `json:"location"`
	MapLink              string   `json:"map_link"`
	OversPerMatch        int      `json:"overs_per_match"`
	UpiID                string   `json:"upi_id"`
	RegistrationDeadline string   `json:"registration_deadline"`
}

// Create creates a tournament with status upcoming. Admin only.
func (s *TournamentService) Create(ctx context.Context, callerID uuid.UUID, input TournamentInput) (*domain.Tournament, error) {
	if input.Name == "" {
		return nil, domain.ErrValidation("tournament name is required")
	}
	if err := domain.ValidateMaxTeams(input.MaxTeams); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if input.EntryFeePerPerson < 0 {
		return nil, domain.ErrValidation("entry fee must not be negative")
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tournament := &domain.Tournament{
		ID:                   uuid.New(),
		Name:                 input.Name,
		Description:          input.Description,
		MaxTeams:             input.MaxTeams,
		EntryFeePerPerson:    input.EntryFeePerPerson,
		Rewards:              input.Rewards,
		GroundPhotos:         input.GroundPhotos,
		TrophyPhotos:         input.TrophyPhotos,
		Date:                 input.Date,
		Location:             input.Location,
		MapLink:              input.MapLink,
		OversPerMatch:        input.OversPerMatch,
		UpiID:                input.UpiID,
		Status:               domain.TournamentUpcoming,
		RegistrationDeadline: input.RegistrationDeadline,
		CreatedBy:            callerID,
	}
	if err := s.tournaments.Create(ctx, s.pool, tournament); err != nil {
		return nil, domain.ErrInternal("create tournament", err)
	}

	s.logger.Info("tournament created", "tournament_id", tournament.ID, "by", callerID)
	return tournament, nil
}

// Get returns one tournament.
func (s *TournamentService) Get(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	tournament, err := s.tournaments.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, domain.ErrInternal("find tournament", err)
	}
	if tournament == nil {
		return nil, domain.ErrNotFound("tournament", id.String())
	}
	return tournament, nil
}

// ListByStatus returns tournaments in the given lifecycle state, newest first.
func (s *TournamentService) ListByStatus(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error) {
	if !domain.ValidTournamentStatus(status) {
		return nil, domain.ErrValidation("invalid tournament status: " + string(status))
	}
	tournaments, err := s.tournaments.ListByStatus(ctx, s.pool, status)
	if err != nil {
		return nil, domain.ErrInternal("list tournaments", err)
	}
	return tournaments, nil
}

// ListMine returns tournaments the caller created.
func (s *TournamentService) ListMine(ctx context.Context, callerID uuid.UUID) ([]domain.Tournament, error) {
	tournaments, err := s.tournaments.ListByCreator(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("list tournaments", err)
	}
	return tournaments, nil
}

// UpdateStatus moves a tournament to the given lifecycle state. Admin only;
// any known status is reachable from any other.
func (s *TournamentService) UpdateStatus(ctx context.Context, callerID, tournamentID uuid.UUID, status domain.TournamentStatus) error {
	if !domain.ValidTournamentStatus(status) {
		return domain.ErrValidation("invalid tournament status: " + string(status))
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

	if err := s.tournaments.UpdateStatus(ctx, tx, tournamentID, status); err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound("tournament", tournamentID.String())
		}
		return domain.ErrInternal("update tournament status", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewTournamentStatusEvent(tournamentID, status, callerID)); err != nil {
		return domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("tournament status updated", "tournament_id", tournamentID, "status", status, "by", callerID)
	return nil
}
