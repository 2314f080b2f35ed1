package auth

import (
	"testing"
	"time"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager() *JWTManager {
	return NewJWTManager("test-secret-key", 24*time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := newTestJWTManager()
	userID := uuid.New()

	token, err := mgr.GenerateToken(userID, "player@club.org", domain.RolePlayer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "player@club.org", claims.Email)
	assert.Equal(t, domain.RolePlayer, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mgr := newTestJWTManager()
	token, err := mgr.GenerateToken(uuid.New(), "a@b.co", domain.RoleUser)
	require.NoError(t, err)

	other := NewJWTManager("another-secret", 24*time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	mgr := NewJWTManager("test-secret-key", -time.Minute)
	token, err := mgr.GenerateToken(uuid.New(), "a@b.co", domain.RoleUser)
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	mgr := newTestJWTManager()
	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}
