package guard

import (
	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
)

// Identity guards shared by every role-gated operation. Services load the
// caller's users row (the row, not the token, is authoritative for roles)
// and run these at the top of each mutation.

// RequireAuthenticated rejects a nil caller.
func RequireAuthenticated(u *domain.User) *domain.AppError {
	if u == nil {
		return domain.ErrUnauthorized("not authenticated")
	}
	return nil
}

// RequireMember rejects callers who have not completed their profile and so
// hold no club member ID.
func RequireMember(u *domain.User) *domain.AppError {
	if u == nil || !u.HasMemberID() {
		return domain.ErrUnauthorized("not authenticated or missing member ID")
	}
	return nil
}

// RequireRole rejects callers whose role differs from want.
func RequireRole(u *domain.User, want domain.Role) *domain.AppError {
	if u == nil {
		return domain.ErrUnauthorized("not authenticated")
	}
	if u.Role != want {
		return domain.ErrForbidden("requires " + string(want) + " role")
	}
	return nil
}

// RequireAdmin is shorthand for RequireRole(u, RoleAdmin).
func RequireAdmin(u *domain.User) *domain.AppError {
	return RequireRole(u, domain.RoleAdmin)
}

// RequireOwner rejects callers who do not own the target record.
func RequireOwner(u *domain.User, ownerID uuid.UUID) *domain.AppError {
	if u == nil {
		return domain.ErrUnauthorized("not authenticated")
	}
	if u.ID != ownerID {
		return domain.ErrForbidden("not the owner of this record")
	}
	return nil
}
