//go:build integration

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// do performs an HTTP request against the test server and returns the status
// code and raw body.
func (env *TestEnv) do(method, path, token string, body any) (int, []byte) {
	env.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, env.Server.URL+path, reader)
	require.NoError(env.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.Server.Client().Do(req)
	require.NoError(env.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(env.t, err)
	return resp.StatusCode, raw
}

func (env *TestEnv) GET(path string) (int, []byte) {
	return env.do(http.MethodGet, path, "", nil)
}

func (env *TestEnv) POST(path string, body any) (int, []byte) {
	return env.do(http.MethodPost, path, "", body)
}

func (env *TestEnv) AuthGET(path, token string) (int, []byte) {
	return env.do(http.MethodGet, path, token, nil)
}

func (env *TestEnv) AuthPOST(path, token string, body any) (int, []byte) {
	return env.do(http.MethodPost, path, token, body)
}

func (env *TestEnv) AuthPUT(path, token string, body any) (int, []byte) {
	return env.do(http.MethodPut, path, token, body)
}

func (env *TestEnv) AuthPATCH(path, token string, body any) (int, []byte) {
	return env.do(http.MethodPatch, path, token, body)
}

// Decode unmarshals a response body into dst, failing the test on error.
func (env *TestEnv) Decode(raw []byte, dst any) {
	env.t.Helper()
	require.NoError(env.t, json.Unmarshal(raw, dst), "body: %s", raw)
}

// ErrorCode extracts the error code from an error response body.
func (env *TestEnv) ErrorCode(raw []byte) string {
	env.t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	env.Decode(raw, &body)
	return body.Code
}

type authResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// RegisterUser creates an account and returns its token and user record.
func (env *TestEnv) RegisterUser(email string) (string, domain.User) {
	env.t.Helper()
	status, raw := env.POST("/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(env.t, http.StatusCreated, status, "register %s: %s", email, raw)

	var result authResult
	env.Decode(raw, &result)
	return result.Token, result.User
}

// Login authenticates an existing account.
func (env *TestEnv) Login(email string) (string, domain.User) {
	env.t.Helper()
	status, raw := env.POST("/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(env.t, http.StatusOK, status, "login %s: %s", email, raw)

	var result authResult
	env.Decode(raw, &result)
	return result.Token, result.User
}

// RegisterMember creates an account and completes its profile, so the user
// holds a member ID and can act as a member.
func (env *TestEnv) RegisterMember(email, fullName string) (string, domain.User) {
	env.t.Helper()
	token, _ := env.RegisterUser(email)

	status, raw := env.AuthPOST("/me/profile", token, map[string]string{
		"full_name":    fullName,
		"phone_number": "+919876543210",
	})
	require.Equal(env.t, http.StatusOK, status, "complete profile %s: %s", email, raw)

	var user domain.User
	env.Decode(raw, &user)
	require.NotEmpty(env.t, user.UniqueID)

	// Profile completion changes the stored role; re-issue the token so the
	// claim matches.
	return env.refresh(email)
}

// RegisterAdmin creates a member and promotes it via the setup password. The
// returned token carries the admin role claim.
func (env *TestEnv) RegisterAdmin(email string) (string, domain.User) {
	env.t.Helper()
	token, _ := env.RegisterMember(email, "Admin "+email)

	status, raw := env.AuthPOST("/me/make-admin", token, map[string]string{
		"password": TestAdminPassword,
	})
	require.Equal(env.t, http.StatusOK, status, "make-admin %s: %s", email, raw)

	return env.refresh(email)
}

func (env *TestEnv) refresh(email string) (string, domain.User) {
	env.t.Helper()
	return env.Login(email)
}

// CreatePlayer creates a cricket profile for the given member token.
func (env *TestEnv) CreatePlayer(token string) domain.Player {
	env.t.Helper()
	status, raw := env.AuthPOST("/players", token, map[string]any{
		"age":          25,
		"area":         "Whitefield",
		"batting_hand": "right",
		"bowling_hand": "right",
	})
	require.Equal(env.t, http.StatusCreated, status, "create player: %s", raw)

	var player domain.Player
	env.Decode(raw, &player)
	return player
}

// CreateTournament creates a tournament as the given admin.
func (env *TestEnv) CreateTournament(adminToken string, maxTeams int) domain.Tournament {
	env.t.Helper()
	status, raw := env.AuthPOST("/admin/tournaments", adminToken, map[string]any{
		"name":                  fmt.Sprintf("Premier League %d", maxTeams),
		"description":           "Weekend knockout",
		"max_teams":             maxTeams,
		"entry_fee_per_person":  500,
		"date":                  "2026-10-15",
		"location":              "BGC Ground",
		"overs_per_match":       12,
		"upi_id":                "bgc@upi",
		"registration_deadline": "2026-10-10",
	})
	require.Equal(env.t, http.StatusCreated, status, "create tournament: %s", raw)

	var tournament domain.Tournament
	env.Decode(raw, &tournament)
	return tournament
}

// RosterEntry builds one denormalized roster entry as a client would send it.
func RosterEntry(playerID uuid.UUID, name, memberID string) domain.TeamPlayer {
	return domain.TeamPlayer{PlayerID: playerID, PlayerName: name, PlayerUniqueID: memberID}
}

// RegisterTeam registers a team in a tournament for the given member. The
// roster is passed through verbatim.
func (env *TestEnv) RegisterTeam(token string, tournamentID string, name string, players []domain.TeamPlayer) (int, []byte) {
	env.t.Helper()
	return env.AuthPOST("/teams", token, map[string]any{
		"tournament_id": tournamentID,
		"name":          name,
		"players":       players,
	})
}
