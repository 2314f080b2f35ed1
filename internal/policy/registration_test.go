package policy

import (
	"testing"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member() *domain.User {
	return &domain.User{ID: uuid.New(), UniqueID: "BGC001", Role: domain.RolePlayer}
}

func upcomingTournament(maxTeams int) *domain.Tournament {
	return &domain.Tournament{ID: uuid.New(), MaxTeams: maxTeams, Status: domain.TournamentUpcoming}
}

func TestEvaluateRegistration_Allows(t *testing.T) {
	err := EvaluateRegistration(RegistrationState{
		Caller:     member(),
		Tournament: upcomingTournament(1),
		TeamCount:  0,
	})
	assert.Nil(t, err)
}

func TestEvaluateRegistration_NilCaller(t *testing.T) {
	err := EvaluateRegistration(RegistrationState{
		Caller:     nil,
		Tournament: upcomingTournament(4),
	})
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestEvaluateRegistration_CallerWithoutMemberID(t *testing.T) {
	caller := member()
	caller.UniqueID = ""
	err := EvaluateRegistration(RegistrationState{
		Caller:     caller,
		Tournament: upcomingTournament(4),
	})
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestEvaluateRegistration_NonUpcomingTournament(t *testing.T) {
	for _, status := range []domain.TournamentStatus{
		domain.TournamentOngoing, domain.TournamentCompleted, domain.TournamentCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			tour := upcomingTournament(4)
			tour.Status = status
			err := EvaluateRegistration(RegistrationState{
				Caller:     member(),
				Tournament: tour,
			})
			require.NotNil(t, err)
			assert.Equal(t, "TOURNAMENT_NOT_OPEN", err.Code)
		})
	}
}

func TestEvaluateRegistration_MissingTournament(t *testing.T) {
	err := EvaluateRegistration(RegistrationState{
		Caller:     member(),
		Tournament: nil,
	})
	require.NotNil(t, err)
	assert.Equal(t, "TOURNAMENT_NOT_OPEN", err.Code)
}

func TestEvaluateRegistration_Duplicate(t *testing.T) {
	err := EvaluateRegistration(RegistrationState{
		Caller:            member(),
		Tournament:        upcomingTournament(4),
		AlreadyRegistered: true,
		TeamCount:         1,
	})
	require.NotNil(t, err)
	assert.Equal(t, "DUPLICATE_REGISTRATION", err.Code)
}

func TestEvaluateRegistration_Full(t *testing.T) {
	err := EvaluateRegistration(RegistrationState{
		Caller:     member(),
		Tournament: upcomingTournament(1),
		TeamCount:  1,
	})
	require.NotNil(t, err)
	assert.Equal(t, "TOURNAMENT_FULL", err.Code)
}

// maxTeams=1 walkthrough: A registers, A retries, B tries.
func TestEvaluateRegistration_SingleSlotScenario(t *testing.T) {
	tour := upcomingTournament(1)

	// A registers into the empty tournament.
	a := member()
	assert.Nil(t, EvaluateRegistration(RegistrationState{
		Caller: a, Tournament: tour, TeamCount: 0,
	}))

	// A tries again: duplicate wins over capacity.
	err := EvaluateRegistration(RegistrationState{
		Caller: a, Tournament: tour, AlreadyRegistered: true, TeamCount: 1,
	})
	require.NotNil(t, err)
	assert.Equal(t, "DUPLICATE_REGISTRATION", err.Code)

	// B is rejected on capacity.
	b := member()
	b.UniqueID = "BGC002"
	err = EvaluateRegistration(RegistrationState{
		Caller: b, Tournament: tour, TeamCount: 1,
	})
	require.NotNil(t, err)
	assert.Equal(t, "TOURNAMENT_FULL", err.Code)
}

// Rejection order: an unauthenticated caller on a full, closed tournament
// still gets the identity error first.
func TestEvaluateRegistration_ChecksIdentityFirst(t *testing.T) {
	tour := upcomingTournament(1)
	tour.Status = domain.TournamentCompleted
	err := EvaluateRegistration(RegistrationState{
		Caller:            nil,
		Tournament:        tour,
		AlreadyRegistered: true,
		TeamCount:         5,
	})
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}
