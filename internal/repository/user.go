package repository

import (
	"context"
	"fmt"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepo struct{}

// NewUserRepository returns a pgx-backed UserRepository.
func NewUserRepository() UserRepository {
	return &userRepo{}
}

const userColumns = `id, email, password_hash, full_name, phone_number, unique_id, role, is_phone_verified, created_at, updated_at`

func (r *userRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.User, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepo) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.User, error) {
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *userRepo) Create(ctx context.Context, db DBTX, user *domain.User) error {
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepo) NextMemberID(ctx context.Context, db DBTX) (string, error) {
	var n int64
	if err := db.QueryRow(ctx, `SELECT nextval('member_id_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next member id: %w", err)
	}
	return fmt.Sprintf("BGC%03d", n), nil
}

func (r *userRepo) CompleteProfile(ctx context.Context, db DBTX, id uuid.UUID, fullName, phone, memberID string) (*domain.User, error) {
	row := db.QueryRow(ctx, `
		UPDATE users
		SET full_name = $2, phone_number = $3,
		    unique_id = CASE WHEN unique_id = '' THEN $4 ELSE unique_id END,
		    role = CASE WHEN role = 'admin' THEN role ELSE 'player' END,
		    is_phone_verified = false, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, fullName, phone, memberID)
	return scanUser(row)
}

func (r *userRepo) SetPhoneVerified(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET is_phone_verified = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set phone verified: %w", err)
	}
	return nil
}

func (r *userRepo) SetRole(ctx context.Context, db DBTX, id uuid.UUID, role domain.Role) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.PhoneNumber,
		&u.UniqueID, &u.Role, &u.IsPhoneVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
