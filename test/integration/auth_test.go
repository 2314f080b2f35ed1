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

func TestRegisterAndLogin(t *testing.T) {
	env := testutil.NewTestEnv(t)

	token, user := env.RegisterUser("alice@example.com")
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.UniqueID)

	t.Run("duplicate email rejected", func(t *testing.T) {
		status, raw := env.POST("/auth/register", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "CONFLICT", env.ErrorCode(raw))
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		status, raw := env.POST("/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "UNAUTHORIZED", env.ErrorCode(raw))
	})

	t.Run("login returns fresh token", func(t *testing.T) {
		loginToken, loginUser := env.Login("alice@example.com")
		assert.NotEmpty(t, loginToken)
		assert.Equal(t, user.ID, loginUser.ID)
	})

	t.Run("me requires token", func(t *testing.T) {
		status, _ := env.GET("/me")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("me returns caller", func(t *testing.T) {
		status, raw := env.AuthGET("/me", token)
		require.Equal(t, http.StatusOK, status)
		var me domain.User
		env.Decode(raw, &me)
		assert.Equal(t, user.ID, me.ID)
	})
}

func TestCompleteProfile(t *testing.T) {
	env := testutil.NewTestEnv(t)

	tokenA, _ := env.RegisterUser("first@example.com")
	tokenB, _ := env.RegisterUser("second@example.com")

	status, raw := env.AuthPOST("/me/profile", tokenA, map[string]string{
		"full_name":    "First Member",
		"phone_number": "+919000000001",
	})
	require.Equal(t, http.StatusOK, status, "body: %s", raw)
	var userA domain.User
	env.Decode(raw, &userA)
	assert.Equal(t, "BGC001", userA.UniqueID)
	assert.Equal(t, domain.RolePlayer, userA.Role)

	status, raw = env.AuthPOST("/me/profile", tokenB, map[string]string{
		"full_name":    "Second Member",
		"phone_number": "+919000000002",
	})
	require.Equal(t, http.StatusOK, status)
	var userB domain.User
	env.Decode(raw, &userB)
	assert.Equal(t, "BGC002", userB.UniqueID)

	t.Run("repeat completion keeps member ID", func(t *testing.T) {
		status, raw := env.AuthPOST("/me/profile", tokenA, map[string]string{
			"full_name":    "First Renamed",
			"phone_number": "+919000000001",
		})
		require.Equal(t, http.StatusOK, status)
		var again domain.User
		env.Decode(raw, &again)
		assert.Equal(t, "BGC001", again.UniqueID)
		assert.Equal(t, "First Renamed", again.FullName)
	})
}

func TestVerifyPhone(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterMember("verify@example.com", "Verify Me")

	status, raw := env.AuthPOST("/me/verify-phone", token, map[string]string{"otp": "123456"})
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	status, raw = env.AuthGET("/me", token)
	require.Equal(t, http.StatusOK, status)
	var me domain.User
	env.Decode(raw, &me)
	assert.True(t, me.IsPhoneVerified)

	t.Run("malformed otp rejected", func(t *testing.T) {
		status, _ := env.AuthPOST("/me/verify-phone", token, map[string]string{"otp": "12"})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestMakeAdmin(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterMember("wannabe@example.com", "Wannabe Admin")

	t.Run("wrong setup password rejected", func(t *testing.T) {
		status, raw := env.AuthPOST("/me/make-admin", token, map[string]string{"password": "nope"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", env.ErrorCode(raw))
	})

	t.Run("correct setup password promotes", func(t *testing.T) {
		status, _ := env.AuthPOST("/me/make-admin", token, map[string]string{"password": testutil.TestAdminPassword})
		require.Equal(t, http.StatusOK, status)

		_, user := env.Login("wannabe@example.com")
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("stale role claim cannot reach admin routes", func(t *testing.T) {
		// token was issued before promotion, so the claim gate rejects it.
		status, _ := env.AuthGET("/admin/messages", token)
		assert.Equal(t, http.StatusForbidden, status)
	})
}
