// Package service holds the application use cases. Services load the
// caller's users row before role-gated mutations; the row, not the JWT
// claim, decides.
package service

import (
	"errors"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/guard"
	"github.com/jackc/pgx/v5"
)

func requireAdmin(caller *domain.User) *domain.AppError {
	return guard.RequireAdmin(caller)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
