package policy

import (
	"testing"

	"github.com/bgc/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func statusPtr(s domain.MatchStatus) *domain.MatchStatus { return &s }

func sidePtr(s domain.BattingSide) *domain.BattingSide { return &s }

func TestScorePatch_EmptyRejected(t *testing.T) {
	err := ScorePatch{}.Validate()
	require.NotNil(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
}

func TestScorePatch_InvalidStatus(t *testing.T) {
	err := ScorePatch{Status: statusPtr("abandoned")}.Validate()
	require.NotNil(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
}

func TestScorePatch_InvalidBattingSide(t *testing.T) {
	err := ScorePatch{CurrentBatting: sidePtr("team3")}.Validate()
	require.NotNil(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
}

func TestScorePatch_ValidSingleField(t *testing.T) {
	assert.Nil(t, ScorePatch{Team1Score: strPtr("145/7")}.Validate())
	assert.Nil(t, ScorePatch{Status: statusPtr(domain.MatchLive)}.Validate())
	assert.Nil(t, ScorePatch{CurrentBatting: sidePtr(domain.BattingTeam2)}.Validate())
}

// Status may move in any direction, including completed back to live.
func TestScorePatch_BackwardStatusAllowed(t *testing.T) {
	assert.Nil(t, ScorePatch{Status: statusPtr(domain.MatchLive)}.Validate())
	assert.Nil(t, ScorePatch{Status: statusPtr(domain.MatchUpcoming)}.Validate())
}

func TestScorePatch_IsEmpty(t *testing.T) {
	assert.True(t, ScorePatch{}.IsEmpty())
	assert.False(t, ScorePatch{Winner: strPtr("Strikers")}.IsEmpty())
	assert.False(t, ScorePatch{Team2Overs: strPtr("0.0")}.IsEmpty())
}
