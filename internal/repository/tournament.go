package repository

import (
	"context"
	"fmt"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type tournamentRepo struct{}

// NewTournamentRepository returns a pgx-backed TournamentRepository.
func NewTournamentRepository() TournamentRepository {
	return &tournamentRepo{}
}

const tournamentColumns = `id, name, description, max_teams, entry_fee_per_person, rewards,
	ground_photos, trophy_photos, date, location, map_link, overs_per_match, upi_id,
	status, registration_deadline, created_by, created_at, updated_at`

func (r *tournamentRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Tournament, error) {
	row := db.QueryRow(ctx, `SELECT `+tournamentColumns+` FROM tournaments WHERE id = $1`, id)
	return scanTournament(row)
}

func (r *tournamentRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Tournament, error) {
	row := tx.QueryRow(ctx, `SELECT `+tournamentColumns+` FROM tournaments WHERE id = $1 FOR UPDATE`, id)
	return scanTournament(row)
}

func (r *tournamentRepo) Create(ctx context.Context, db DBTX, t *domain.Tournament) error {
	_, err := db.Exec(ctx, `
		INSERT INTO tournaments (id, name, description, max_teams, entry_fee_per_person, rewards,
			ground_photos, trophy_photos, date, location, map_link, overs_per_match, upi_id,
			status, registration_deadline, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID, t.Name, t.Description, t.MaxTeams, t.EntryFeePerPerson, t.Rewards,
		t.GroundPhotos, t.TrophyPhotos, t.Date, t.Location, t.MapLink, t.OversPerMatch, t.UpiID,
		t.Status, t.RegistrationDeadline, t.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}
	return nil
}

func (r *tournamentRepo) ListByStatus(ctx context.Context, db DBTX, status domain.TournamentStatus) ([]domain.Tournament, error) {
	rows, err := db.Query(ctx,
		`SELECT `+tournamentColumns+` FROM tournaments WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("query tournaments by status: %w", err)
	}
	defer rows.Close()
	return collectTournaments(rows)
}

func (r *tournamentRepo) ListByCreator(ctx context.Context, db DBTX, createdBy uuid.UUID) ([]domain.Tournament, error) {
	rows, err := db.Query(ctx,
		`SELECT `+tournamentColumns+` FROM tournaments WHERE created_by = $1 ORDER BY created_at DESC`, createdBy)
	if err != nil {
		return nil, fmt.Errorf("query tournaments by creator: %w", err)
	}
	defer rows.Close()
	return collectTournaments(rows)
}

func (r *tournamentRepo) UpdateStatus(ctx context.Context, db DBTX, id uuid.UUID, status domain.TournamentStatus) error {
	tag, err := db.Exec(ctx,
		`UPDATE tournaments SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update tournament status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectTournaments(rows pgx.Rows) ([]domain.Tournament, error) {
	var tournaments []domain.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *t)
	}
	return tournaments, rows.Err()
}

func scanTournament(row pgx.Row) (*domain.Tournament, error) {
	var t domain.Tournament
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.MaxTeams, &t.EntryFeePerPerson, &t.Rewards,
		&t.GroundPhotos, &t.TrophyPhotos, &t.Date, &t.Location, &t.MapLink, &t.OversPerMatch, &t.UpiID,
		&t.Status, &t.RegistrationDeadline, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan tournament: %w", err)
	}
	return &t, nil
}
