package repository

import (
	"context"
	"fmt"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type messageRepo struct{}

// NewMessageRepository returns a pgx-backed MessageRepository.
func NewMessageRepository() MessageRepository {
	return &messageRepo{}
}

const messageColumns = `id, from_user_id, from_user_name, from_user_unique_id, subject, content,
	is_read, admin_response, responded_at, created_at`

func (r *messageRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Message, error) {
	row := db.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	return scanMessage(row)
}

func (r *messageRepo) Insert(ctx context.Context, db DBTX, m *domain.Message) error {
	_, err := db.Exec(ctx, `
		INSERT INTO messages (id, from_user_id, from_user_name, from_user_unique_id, subject, content, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, false)`,
		m.ID, m.FromUserID, m.FromUserName, m.FromUserUniqueID, m.Subject, m.Content,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messageRepo) ListAll(ctx context.Context, db DBTX) ([]domain.Message, error) {
	rows, err := db.Query(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) CountUnread(ctx context.Context, db DBTX) (int, error) {
	var n int
	err := db.QueryRow(ctx, `SELECT count(*) FROM messages WHERE is_read = false`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

func (r *messageRepo) MarkRead(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepo) Respond(ctx context.Context, db DBTX, id uuid.UUID, response string) (*domain.Message, error) {
	row := db.QueryRow(ctx, `
		UPDATE messages
		SET admin_response = $2, responded_at = now(), is_read = true
		WHERE id = $1
		RETURNING `+messageColumns, id, response)
	return scanMessage(row)
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.FromUserID, &m.FromUserName, &m.FromUserUniqueID,
		&m.Subject, &m.Content, &m.IsRead, &m.AdminResponse, &m.RespondedAt, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return &m, nil
}
