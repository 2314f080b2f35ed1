package service

import (
	"context"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/guard"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlayerService handles cricket profiles: the public roster entries members
// create for themselves.
type PlayerService struct {
	pool    *pgxpool.Pool
	users   repository.UserRepository
	players repository.PlayerRepository
}

// NewPlayerService creates a PlayerService.
func NewPlayerService(pool *pgxpool.Pool, users repository.UserRepository, players repository.PlayerRepository) *PlayerService {
	return &PlayerService{pool: pool, users: users, players: players}
}

// PlayerInput holds the editable cricket profile fields.
type PlayerInput struct {
	Photo          string      `json:"photo"`
	Age            int         `json:"age"`
	Area           string      `json:"area"`
	BattingHand    domain.Hand `json:"batting_hand"`
	BowlingHand    domain.Hand `json:"bowling_hand"`
	AdditionalInfo string      `json:"additional_info"`
}

func (in PlayerInput) validate() *domain.AppError {
	if err := domain.ValidateAge(in.Age); err != nil {
		return domain.ErrValidation(err.Error())
	}
	if in.Area == "" {
		return domain.ErrValidation("area is required")
	}
	if !domain.ValidHand(in.BattingHand) {
		return domain.ErrValidation("invalid batting hand: " + string(in.BattingHand))
	}
	if !domain.ValidHand(in.BowlingHand) {
		return domain.ErrValidation("invalid bowling hand: " + string(in.BowlingHand))
	}
	return nil
}

// Create creates the caller's cricket profile. One profile per user; members
// only.
func (s *PlayerService) Create(ctx context.Context, callerID uuid.UUID, input PlayerInput) (*domain.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := guard.RequireMember(caller); err != nil {
		return nil, err
	}

	existing, err := s.players.FindByUser(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find player", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("player profile already exists")
	}

	player := &domain.Player{
		ID:             uuid.New(),
		UserID:         callerID,
		Photo:          input.Photo,
		Age:            input.Age,
		Area:           input.Area,
		BattingHand:    input.BattingHand,
		BowlingHand:    input.BowlingHand,
		AdditionalInfo: input.AdditionalInfo,
		IsActive:       true,
	}
	if err := s.players.Create(ctx, s.pool, player); err != nil {
		return nil, domain.ErrInternal("create player", err)
	}
	return player, nil
}

// Update edits a cricket profile. Only the owner may edit.
func (s *PlayerService) Update(ctx context.Context, callerID, playerID uuid.UUID, input PlayerInput) (*domain.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := guard.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	player, err := s.players.FindByID(ctx, s.pool, playerID)
	if err != nil {
		return nil, domain.ErrInternal("find player", err)
	}
	if player == nil {
		return nil, domain.ErrNotFound("player", playerID.String())
	}
	if err := guard.RequireOwner(caller, player.UserID); err != nil {
		return nil, err
	}

	player.Photo = input.Photo
	player.Age = input.Age
	player.Area = input.Area
	player.BattingHand = input.BattingHand
	player.BowlingHand = input.BowlingHand
	player.AdditionalInfo = input.AdditionalInfo

	if err := s.players.Update(ctx, s.pool, player); err != nil {
		return nil, domain.ErrInternal("update player", err)
	}
	return player, nil
}

// Mine returns the caller's own cricket profile, or nil when none exists.
func (s *PlayerService) Mine(ctx context.Context, callerID uuid.UUID) (*domain.Player, error) {
	player, err := s.players.FindByUser(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find player", err)
	}
	return player, nil
}

// ListActive returns the public roster: active profiles with owner name and
// member ID, ordered by member ID.
func (s *PlayerService) ListActive(ctx context.Context) ([]domain.PlayerWithOwner, error) {
	players, err := s.players.ListActive(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list players", err)
	}
	return players, nil
}
