package service

import (
	"context"
	"log/slog"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/guard"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileService handles the club-membership side of an account: profile
// completion with member ID assignment, phone verification, admin promotion.
type ProfileService struct {
	pool               *pgxpool.Pool
	users              repository.UserRepository
	outbox             repository.OutboxRepository
	adminSetupPassword string
	logger             *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(
	pool *pgxpool.Pool,
	users repository.UserRepository,
	outbox repository.OutboxRepository,
	adminSetupPassword string,
	logger *slog.Logger,
) *ProfileService {
	return &ProfileService{
		pool:               pool,
		users:              users,
		outbox:             outbox,
		adminSetupPassword: adminSetupPassword,
		logger:             logger,
	}
}

// Me returns the caller's users row.
func (s *ProfileService) Me(ctx context.Context, callerID uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound("user", callerID.String())
	}
	return user, nil
}

// CompleteProfileInput holds the profile completion fields.
type CompleteProfileInput struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// CompleteProfile sets name and phone, assigns the next sequential club
// member ID (exactly once, repeat calls keep the original), and promotes the
// role to player.
func (s *ProfileService) CompleteProfile(ctx context.Context, callerID uuid.UUID, input CompleteProfileInput) (*domain.User, error) {
	if input.FullName == "" {
		return nil, domain.ErrValidation("full name is required")
	}
	if input.PhoneNumber == "" {
		return nil, domain.ErrValidation("phone number is required")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	user, err := s.users.FindByID(ctx, tx, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := guard.RequireAuthenticated(user); err != nil {
		return nil, err
	}

	memberID := user.UniqueID
	assigned := false
	if memberID == "" {
		memberID, err = s.users.NextMemberID(ctx, tx)
		if err != nil {
			return nil, domain.ErrInternal("next member id", err)
		}
		assigned = true
	}

	updated, err := s.users.CompleteProfile(ctx, tx, callerID, input.FullName, input.PhoneNumber, memberID)
	if err != nil {
		return nil, domain.ErrInternal("complete profile", err)
	}

	if assigned {
		if err := s.outbox.Insert(ctx, tx, domain.NewProfileCompletedEvent(callerID, memberID)); err != nil {
			return nil, domain.ErrInternal("write outbox", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("profile completed", "user_id", callerID, "member_id", memberID, "assigned", assigned)
	return updated, nil
}

// VerifyPhone checks the one-time code shape and flips the verification flag.
// Code delivery and matching sit at the SMS provider boundary; this endpoint
// trusts a well-formed code.
func (s *ProfileService) VerifyPhone(ctx context.Context, callerID uuid.UUID, otp string) error {
	if err := domain.ValidateOTP(otp); err != nil {
		return domain.ErrValidation(err.Error())
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	user, err := s.users.FindByID(ctx, tx, callerID)
	if err != nil {
		return domain.ErrInternal("find user", err)
	}
	if err := guard.RequireAuthenticated(user); err != nil {
		return err
	}

	if err := s.users.SetPhoneVerified(ctx, tx, callerID); err != nil {
		return domain.ErrInternal("set phone verified", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPhoneVerifiedEvent(callerID)); err != nil {
		return domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}
	return nil
}

// MakeAdmin promotes the caller to admin when the shared setup password
// matches. The password lives in configuration, not the database.
func (s *ProfileService) MakeAdmin(ctx context.Context, callerID uuid.UUID, password string) error {
	if password != s.adminSetupPassword {
		return domain.ErrForbidden("invalid admin password")
	}

	user, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return domain.ErrInternal("find user", err)
	}
	if err := guard.RequireAuthenticated(user); err != nil {
		return err
	}

	if err := s.users.SetRole(ctx, s.pool, callerID, domain.RoleAdmin); err != nil {
		return domain.ErrInternal("set role", err)
	}

	s.logger.Info("admin granted", "user_id", callerID)
	return nil
}
