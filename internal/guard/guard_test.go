package guard

import (
	"testing"

	"github.com/bgc/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthenticated(t *testing.T) {
	assert.Nil(t, RequireAuthenticated(&domain.User{ID: uuid.New()}))

	err := RequireAuthenticated(nil)
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestRequireMember(t *testing.T) {
	assert.Nil(t, RequireMember(&domain.User{ID: uuid.New(), UniqueID: "BGC007"}))

	err := RequireMember(&domain.User{ID: uuid.New()})
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)

	err = RequireMember(nil)
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestRequireRole(t *testing.T) {
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	player := &domain.User{ID: uuid.New(), Role: domain.RolePlayer}

	assert.Nil(t, RequireRole(admin, domain.RoleAdmin))

	err := RequireRole(player, domain.RoleAdmin)
	require.NotNil(t, err)
	assert.Equal(t, "FORBIDDEN", err.Code)

	err = RequireRole(nil, domain.RoleAdmin)
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestRequireAdmin(t *testing.T) {
	assert.Nil(t, RequireAdmin(&domain.User{Role: domain.RoleAdmin}))
	assert.NotNil(t, RequireAdmin(&domain.User{Role: domain.RolePlayer}))
}

func TestRequireOwner(t *testing.T) {
	owner := &domain.User{ID: uuid.New()}
	other := uuid.New()

	assert.Nil(t, RequireOwner(owner, owner.ID))

	err := RequireOwner(owner, other)
	require.NotNil(t, err)
	assert.Equal(t, "FORBIDDEN", err.Code)

	err = RequireOwner(nil, other)
	require.NotNil(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

// Admins are not implicitly owners; ownership is checked against the ID only.
func TestRequireOwner_AdminIsNotOwner(t *testing.T) {
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
	err := RequireOwner(admin, uuid.New())
	require.NotNil(t, err)
	assert.Equal(t, "FORBIDDEN", err.Code)
}
