package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type teamRepo struct{}

// NewTeamRepository returns a pgx-backed TeamRepository.
func NewTeamRepository() TeamRepository {
	return &teamRepo{}
}

const teamColumns = `id, name, owner_id, owner_unique_id, players, tournament_id, registration_date, payment_status`

func (r *teamRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Team, error) {
	row := db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	return scanTeam(row)
}

func (r *teamRepo) FindByTournamentAndOwner(ctx context.Context, db DBTX, tournamentID, ownerID uuid.UUID) (*domain.Team, error) {
	row := db.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE tournament_id = $1 AND owner_id = $2`,
		tournamentID, ownerID)
	return scanTeam(row)
}

func (r *teamRepo) CountByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) (int, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT count(*) FROM teams WHERE tournament_id = $1`, tournamentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return n, nil
}

func (r *teamRepo) Insert(ctx context.Context, db DBTX, team *domain.Team) error {
	players, err := json.Marshal(team.Players)
	if err != nil {
		return fmt.Errorf("marshal team players: %w", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO teams (id, name, owner_id, owner_unique_id, players, tournament_id, registration_date, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		team.ID, team.Name, team.OwnerID, team.OwnerUniqueID, players,
		team.TournamentID, team.RegistrationDate, team.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *teamRepo) ListByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]domain.Team, error) {
	rows, err := db.Query(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE owner_id = $1 ORDER BY registration_date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query teams by owner: %w", err)
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) ListByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) ([]domain.Team, error) {
	rows, err := db.Query(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE tournament_id = $1 ORDER BY registration_date ASC`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("query teams by tournament: %w", err)
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) UpdatePaymentStatus(ctx context.Context, db DBTX, id uuid.UUID, status domain.PaymentStatus) error {
	tag, err := db.Exec(ctx,
		`UPDATE teams SET payment_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectTeams(rows pgx.Rows) ([]domain.Team, error) {
	var teams []domain.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	var players []byte
	err := row.Scan(&t.ID, &t.Name, &t.OwnerID, &t.OwnerUniqueID, &players,
		&t.TournamentID, &t.RegistrationDate, &t.PaymentStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	if err := json.Unmarshal(players, &t.Players); err != nil {
		return nil, fmt.Errorf("unmarshal team players: %w", err)
	}
	return &t, nil
}
