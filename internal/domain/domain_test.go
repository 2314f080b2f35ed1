package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("player@club.org"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidateOTP(t *testing.T) {
	assert.NoError(t, ValidateOTP("123456"))
	assert.Error(t, ValidateOTP("12345"))
	assert.Error(t, ValidateOTP("1234567"))
	assert.Error(t, ValidateOTP("12345a"))
	assert.Error(t, ValidateOTP(""))
}

func TestValidateMemberID(t *testing.T) {
	assert.NoError(t, ValidateMemberID("BGC001"))
	assert.NoError(t, ValidateMemberID("BGC999"))
	// Sequence keeps counting past three digits.
	assert.NoError(t, ValidateMemberID("BGC1000"))
	assert.Error(t, ValidateMemberID("BGC01"))
	assert.Error(t, ValidateMemberID("bgc001"))
	assert.Error(t, ValidateMemberID(""))
}

func TestValidateAge(t *testing.T) {
	assert.NoError(t, ValidateAge(10))
	assert.NoError(t, ValidateAge(90))
	assert.Error(t, ValidateAge(9))
	assert.Error(t, ValidateAge(91))
}

func TestValidateMaxTeams(t *testing.T) {
	assert.NoError(t, ValidateMaxTeams(1))
	assert.Error(t, ValidateMaxTeams(0))
	assert.Error(t, ValidateMaxTeams(-4))
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superadmin"))

	assert.True(t, ValidTournamentStatus(TournamentCancelled))
	assert.False(t, ValidTournamentStatus("paused"))

	assert.True(t, ValidPaymentStatus(PaymentVerified))
	assert.False(t, ValidPaymentStatus("refunded"))

	assert.True(t, ValidMatchStatus(MatchLive))
	assert.False(t, ValidMatchStatus("abandoned"))

	assert.True(t, ValidBattingSide(BattingTeam1))
	assert.False(t, ValidBattingSide("team3"))

	assert.True(t, ValidHand(HandLeft))
	assert.False(t, ValidHand("ambidextrous"))
}

func TestUserHasMemberID(t *testing.T) {
	assert.False(t, (*User)(nil).HasMemberID())
	assert.False(t, (&User{}).HasMemberID())
	assert.True(t, (&User{UniqueID: "BGC001"}).HasMemberID())
}

func TestTournamentAcceptsRegistrations(t *testing.T) {
	assert.True(t, (&Tournament{Status: TournamentUpcoming}).AcceptsRegistrations())
	assert.False(t, (&Tournament{Status: TournamentOngoing}).AcceptsRegistrations())
	assert.False(t, (&Tournament{Status: TournamentCompleted}).AcceptsRegistrations())
	assert.False(t, (&Tournament{Status: TournamentCancelled}).AcceptsRegistrations())
	assert.False(t, (*Tournament)(nil).AcceptsRegistrations())
}

// A past registration deadline on an upcoming tournament does not close it.
func TestTournamentDeadlineIsAdvisory(t *testing.T) {
	tour := &Tournament{Status: TournamentUpcoming, RegistrationDeadline: "2001-01-01"}
	assert.True(t, tour.AcceptsRegistrations())
}

func TestTournamentAcceptsMatches(t *testing.T) {
	assert.True(t, (&Tournament{Status: TournamentUpcoming}).AcceptsMatches())
	assert.True(t, (&Tournament{Status: TournamentOngoing}).AcceptsMatches())
	assert.False(t, (&Tournament{Status: TournamentCompleted}).AcceptsMatches())
	assert.False(t, (&Tournament{Status: TournamentCancelled}).AcceptsMatches())
}

func TestAppErrorCodes(t *testing.T) {
	assert.Equal(t, 409, ErrTournamentNotOpen().Status)
	assert.Equal(t, 409, ErrDuplicateRegistration().Status)
	assert.Equal(t, 409, ErrTournamentFull().Status)
	assert.Equal(t, "TOURNAMENT_NOT_OPEN", ErrTournamentNotOpen().Code)
	assert.Equal(t, "DUPLICATE_REGISTRATION", ErrDuplicateRegistration().Code)
	assert.Equal(t, "TOURNAMENT_FULL", ErrTournamentFull().Code)
}

func TestOutboxEventFactories(t *testing.T) {
	team := &Team{ID: uuid.New(), Name: "Strikers"}
	draft := NewTeamRegisteredEvent(team)
	assert.Equal(t, EventTeamRegistered, draft.EventType)
	assert.Equal(t, AggregateTeam, draft.AggregateType)
	assert.Equal(t, team.ID.String(), draft.AggregateID)
	assert.Equal(t, draft.AggregateID, draft.PartitionKey)
	assert.NotZero(t, draft.EventID)
	assert.NotEmpty(t, draft.Payload)
}
