package repository

import (
	"context"
	"fmt"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type playerRepo struct{}

// NewPlayerRepository returns a pgx-backed PlayerRepository.
func NewPlayerRepository() PlayerRepository {
	return &playerRepo{}
}

const playerColumns = `id, user_id, photo, age, area, batting_hand, bowling_hand, additional_info, is_active, created_at, updated_at`

func (r *playerRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Player, error) {
	row := db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (r *playerRepo) FindByUser(ctx context.Context, db DBTX, userID uuid.UUID) (*domain.Player, error) {
	row := db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE user_id = $1`, userID)
	return scanPlayer(row)
}

func (r *playerRepo) Create(ctx context.Context, db DBTX, p *domain.Player) error {
	_, err := db.Exec(ctx, `
		INSERT INTO players (id, user_id, photo, age, area, batting_hand, bowling_hand, additional_info, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.Photo, p.Age, p.Area, p.BattingHand, p.BowlingHand, p.AdditionalInfo, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *playerRepo) Update(ctx context.Context, db DBTX, p *domain.Player) error {
	_, err := db.Exec(ctx, `
		UPDATE players
		SET photo = $2, age = $3, area = $4, batting_hand = $5, bowling_hand = $6,
		    additional_info = $7, updated_at = now()
		WHERE id = $1`,
		p.ID, p.Photo, p.Age, p.Area, p.BattingHand, p.BowlingHand, p.AdditionalInfo,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *playerRepo) ListActive(ctx context.Context, db DBTX) ([]domain.PlayerWithOwner, error) {
	rows, err := db.Query(ctx, `
		SELECT p.id, p.user_id, p.photo, p.age, p.area, p.batting_hand, p.bowling_hand,
		       p.additional_info, p.is_active, p.created_at, p.updated_at,
		       u.full_name, u.unique_id
		FROM players p
		JOIN users u ON u.id = p.user_id
		WHERE p.is_active = true
		ORDER BY u.unique_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query active players: %w", err)
	}
	defer rows.Close()

	var players []domain.PlayerWithOwner
	for rows.Next() {
		var p domain.PlayerWithOwner
		err := rows.Scan(&p.ID, &p.UserID, &p.Photo, &p.Age, &p.Area, &p.BattingHand,
			&p.BowlingHand, &p.AdditionalInfo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
			&p.OwnerName, &p.OwnerUniqueID)
		if err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.UserID, &p.Photo, &p.Age, &p.Area, &p.BattingHand,
		&p.BowlingHand, &p.AdditionalInfo, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return &p, nil
}
