//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTwoTeams registers two teams in a fresh tournament and returns the
// tournament and both teams.
func setupTwoTeams(t *testing.T, env *testutil.TestEnv, adminToken string) (domain.Tournament, domain.Team, domain.Team) {
	t.Helper()
	tournament := env.CreateTournament(adminToken, 4)

	var teams [2]domain.Team
	for i, email := range []string{"captain1@example.com", "captain2@example.com"} {
		token, member := env.RegisterMember(email, "Captain "+email)
		player := env.CreatePlayer(token)
		roster := []domain.TeamPlayer{
			testutil.RosterEntry(player.ID, member.FullName, member.UniqueID),
		}
		status, raw := env.RegisterTeam(token, tournament.ID.String(),
			[]string{"Alpha XI", "Bravo XI"}[i], roster)
		require.Equal(t, http.StatusCreated, status, "body: %s", raw)
		env.Decode(raw, &teams[i])
	}
	return tournament, teams[0], teams[1]
}

func TestMatchCreation(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminToken, _ := env.RegisterAdmin("scorer@example.com")
	tournament, team1, team2 := setupTwoTeams(t, env, adminToken)

	status, raw := env.AuthPOST("/admin/matches", adminToken, map[string]any{
		"tournament_id": tournament.ID.String(),
		"team1_id":      team1.ID.String(),
		"team2_id":      team2.ID.String(),
		"match_date":    "2026-10-15 09:00",
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", raw)

	var match domain.Match
	env.Decode(raw, &match)
	assert.Equal(t, domain.MatchUpcoming, match.Status)
	assert.Equal(t, "Alpha XI", match.Team1Name)
	assert.Equal(t, "Bravo XI", match.Team2Name)

	t.Run("listed under tournament", func(t *testing.T) {
		status, raw := env.GET("/tournaments/" + tournament.ID.String() + "/matches")
		require.Equal(t, http.StatusOK, status)
		var matches []domain.Match
		env.Decode(raw, &matches)
		require.Len(t, matches, 1)
		assert.Equal(t, match.ID, matches[0].ID)
	})

	t.Run("public get", func(t *testing.T) {
		status, raw := env.GET("/matches/" + match.ID.String())
		require.Equal(t, http.StatusOK, status)
		var got domain.Match
		env.Decode(raw, &got)
		assert.Equal(t, match.ID, got.ID)
	})

	t.Run("same team on both sides rejected", func(t *testing.T) {
		status, _ := env.AuthPOST("/admin/matches", adminToken, map[string]any{
			"tournament_id": tournament.ID.String(),
			"team1_id":      team1.ID.String(),
			"team2_id":      team1.ID.String(),
			"match_date":    "2026-10-15 11:00",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("foreign team rejected", func(t *testing.T) {
		other := env.CreateTournament(adminToken, 4)
		status, _ := env.AuthPOST("/admin/matches", adminToken, map[string]any{
			"tournament_id": other.ID.String(),
			"team1_id":      team1.ID.String(),
			"team2_id":      team2.ID.String(),
			"match_date":    "2026-10-16 09:00",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("completed tournament accepts no matches", func(t *testing.T) {
		status, _ := env.AuthPATCH("/admin/tournaments/"+tournament.ID.String()+"/status",
			adminToken, map[string]string{"status": "completed"})
		require.Equal(t, http.StatusOK, status)

		status, raw := env.AuthPOST("/admin/matches", adminToken, map[string]any{
			"tournament_id": tournament.ID.String(),
			"team1_id":      team1.ID.String(),
			"team2_id":      team2.ID.String(),
			"match_date":    "2026-10-17 09:00",
		})
		assert.Equal(t, http.StatusConflict, status, "body: %s", raw)
	})
}

func TestMatchScoring(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminToken, admin := env.RegisterAdmin("scorer@example.com")
	tournament, team1, team2 := setupTwoTeams(t, env, adminToken)

	status, raw := env.AuthPOST("/admin/matches", adminToken, map[string]any{
		"tournament_id": tournament.ID.String(),
		"team1_id":      team1.ID.String(),
		"team2_id":      team2.ID.String(),
		"match_date":    "2026-10-15 09:00",
	})
	require.Equal(t, http.StatusCreated, status)
	var match domain.Match
	env.Decode(raw, &match)
	path := "/admin/matches/" + match.ID.String() + "/score"

	t.Run("empty patch rejected", func(t *testing.T) {
		status, _ := env.AuthPATCH(path, adminToken, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status, _ := env.AuthPATCH(path, adminToken, map[string]string{"status": "abandoned"})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("go live and score", func(t *testing.T) {
		status, raw := env.AuthPATCH(path, adminToken, map[string]any{
			"status":          "live",
			"team1_score":     "45/2",
			"team1_overs":     "6.3",
			"current_batting": "team1",
		})
		require.Equal(t, http.StatusOK, status, "body: %s", raw)
		var live domain.Match
		env.Decode(raw, &live)
		assert.Equal(t, domain.MatchLive, live.Status)
		assert.Equal(t, "45/2", live.Team1Score)
		assert.Equal(t, admin.ID, live.UpdatedBy)
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		status, raw := env.AuthPATCH(path, adminToken, map[string]string{"team2_score": "12/0"})
		require.Equal(t, http.StatusOK, status)
		var got domain.Match
		env.Decode(raw, &got)
		assert.Equal(t, "45/2", got.Team1Score)
		assert.Equal(t, "12/0", got.Team2Score)
		assert.Equal(t, domain.MatchLive, got.Status)
	})

	t.Run("complete with winner", func(t *testing.T) {
		status, raw := env.AuthPATCH(path, adminToken, map[string]any{
			"status": "completed",
			"winner": "Alpha XI",
		})
		require.Equal(t, http.StatusOK, status)
		var done domain.Match
		env.Decode(raw, &done)
		assert.Equal(t, domain.MatchCompleted, done.Status)
		assert.Equal(t, "Alpha XI", done.Winner)
	})

	t.Run("listed under completed filter", func(t *testing.T) {
		status, raw := env.GET("/matches?status=completed")
		require.Equal(t, http.StatusOK, status)
		var matches []domain.Match
		env.Decode(raw, &matches)
		require.Len(t, matches, 1)
	})

	t.Run("unknown match 404", func(t *testing.T) {
		status, _ := env.AuthPATCH("/admin/matches/00000000-0000-0000-0000-000000000001/score",
			adminToken, map[string]string{"status": "live"})
		assert.Equal(t, http.StatusNotFound, status)
	})
}
