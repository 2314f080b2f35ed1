package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/policy"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type matchRepo struct{}

// NewMatchRepository returns a pgx-backed MatchRepository.
func NewMatchRepository() MatchRepository {
	return &matchRepo{}
}

const matchColumns = `id, tournament_id, team1_id, team2_id, team1_name, team2_name, match_date,
	status, team1_score, team2_score, team1_overs, team2_overs, current_batting, winner,
	updated_by, created_at, updated_at`

func (r *matchRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Match, error) {
	row := db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *matchRepo) Insert(ctx context.Context, db DBTX, m *domain.Match) error {
	_, err := db.Exec(ctx, `
		INSERT INTO matches (id, tournament_id, team1_id, team2_id, team1_name, team2_name,
			match_date, status, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.TournamentID, m.Team1ID, m.Team2ID, m.Team1Name, m.Team2Name,
		m.MatchDate, m.Status, m.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *matchRepo) ListByTournament(ctx context.Context, db DBTX, tournamentID uuid.UUID) ([]domain.Match, error) {
	rows, err := db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE tournament_id = $1 ORDER BY created_at ASC`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("query matches by tournament: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

func (r *matchRepo) ListByStatus(ctx context.Context, db DBTX, status domain.MatchStatus) ([]domain.Match, error) {
	rows, err := db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE status = $1 ORDER BY created_at ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("query matches by status: %w", err)
	}
	defer rows.Close()
	return collectMatches(rows)
}

// ApplyScorePatch builds dynamic SET clauses from the present patch fields so
// absent fields stay untouched.
func (r *matchRepo) ApplyScorePatch(ctx context.Context, db DBTX, id uuid.UUID, patch policy.ScorePatch, updatedBy uuid.UUID) (*domain.Match, error) {
	setClauses := []string{"updated_at = now()"}
	args := []interface{}{}
	argIdx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Team1Score != nil {
		add("team1_score", *patch.Team1Score)
	}
	if patch.Team2Score != nil {
		add("team2_score", *patch.Team2Score)
	}
	if patch.Team1Overs != nil {
		add("team1_overs", *patch.Team1Overs)
	}
	if patch.Team2Overs != nil {
		add("team2_overs", *patch.Team2Overs)
	}
	if patch.CurrentBatting != nil {
		add("current_batting", string(*patch.CurrentBatting))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.Winner != nil {
		add("winner", *patch.Winner)
	}
	add("updated_by", updatedBy)

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE matches SET %s WHERE id = $%d RETURNING `+matchColumns,
		strings.Join(setClauses, ", "), argIdx)

	row := db.QueryRow(ctx, query, args...)
	return scanMatch(row)
}

func collectMatches(rows pgx.Rows) ([]domain.Match, error) {
	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.TournamentID, &m.Team1ID, &m.Team2ID, &m.Team1Name, &m.Team2Name,
		&m.MatchDate, &m.Status, &m.Team1Score, &m.Team2Score, &m.Team1Overs, &m.Team2Overs,
		&m.CurrentBatting, &m.Winner, &m.UpdatedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan match: %w", err)
	}
	return &m, nil
}
