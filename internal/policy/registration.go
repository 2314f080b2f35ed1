package policy

import "github.com/bgc/platform/internal/domain"

// RegistrationState is everything the registration rules need to decide,
// gathered by the caller (inside the registration transaction so the counts
// cannot move underneath the decision).
type RegistrationState struct {
	Caller            *domain.User
	Tournament        *domain.Tournament
	AlreadyRegistered bool // a team exists for (tournament, caller)
	TeamCount         int  // committed teams for the tournament
}

// EvaluateRegistration applies the team-registration invariants in order and
// returns the first violation, or nil when the registration may commit:
//
//  1. caller must be authenticated and hold a club member ID
//  2. tournament must exist and have status upcoming
//  3. at most one team per (tournament, owner)
//  4. committed teams must be below the tournament capacity
//
// The stored registration deadline is advisory and deliberately not compared
// against the clock here; only the status gates registration.
func EvaluateRegistration(s RegistrationState) *domain.AppError {
	if s.Caller == nil || !s.Caller.HasMemberID() {
		return domain.ErrUnauthorized("not authenticated or missing member ID")
	}
	if !s.Tournament.AcceptsRegistrations() {
		return domain.ErrTournamentNotOpen()
	}
	if s.AlreadyRegistered {
		return domain.ErrDuplicateRegistration()
	}
	if s.TeamCount >= s.Tournament.MaxTeams {
		return domain.ErrTournamentFull()
	}
	return nil
}
