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

func TestMessageInbox(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminToken, _ := env.RegisterAdmin("admin@example.com")
	memberToken, member := env.RegisterMember("writer@example.com", "Letter Writer")

	status, raw := env.AuthPOST("/messages", memberToken, map[string]string{
		"subject": "Ground availability",
		"content": "Is the ground free next Sunday?",
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", raw)

	var msg domain.Message
	env.Decode(raw, &msg)
	assert.Equal(t, member.ID, msg.FromUserID)
	assert.Equal(t, "Letter Writer", msg.FromUserName)
	assert.Equal(t, member.UniqueID, msg.FromUserUniqueID)
	assert.False(t, msg.IsRead)
	assert.Nil(t, msg.RespondedAt)

	t.Run("missing subject rejected", func(t *testing.T) {
		status, _ := env.AuthPOST("/messages", memberToken, map[string]string{
			"content": "no subject here",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("sender without member ID rejected", func(t *testing.T) {
		bareToken, _ := env.RegisterUser("bare@example.com")
		status, _ := env.AuthPOST("/messages", bareToken, map[string]string{
			"subject": "hello", "content": "anyone there?",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("member cannot read the inbox", func(t *testing.T) {
		status, _ := env.AuthGET("/admin/messages", memberToken)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("admin lists and counts unread", func(t *testing.T) {
		status, raw := env.AuthGET("/admin/messages", adminToken)
		require.Equal(t, http.StatusOK, status)
		var messages []domain.Message
		env.Decode(raw, &messages)
		require.Len(t, messages, 1)

		status, raw = env.AuthGET("/admin/messages/unread-count", adminToken)
		require.Equal(t, http.StatusOK, status)
		var count struct {
			Unread int `json:"unread"`
		}
		env.Decode(raw, &count)
		assert.Equal(t, 1, count.Unread)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		path := "/admin/messages/" + msg.ID.String() + "/read"
		for i := 0; i < 2; i++ {
			status, raw := env.AuthPOST(path, adminToken, nil)
			require.Equal(t, http.StatusOK, status, "attempt %d: %s", i, raw)
		}

		status, raw := env.AuthGET("/admin/messages/unread-count", adminToken)
		require.Equal(t, http.StatusOK, status)
		var count struct {
			Unread int `json:"unread"`
		}
		env.Decode(raw, &count)
		assert.Equal(t, 0, count.Unread)
	})

	t.Run("unknown message 404", func(t *testing.T) {
		status, _ := env.AuthPOST("/admin/messages/00000000-0000-0000-0000-000000000001/read",
			adminToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestMessageRespond(t *testing.T) {
	env := testutil.NewTestEnv(t)
	adminToken, _ := env.RegisterAdmin("admin@example.com")
	memberToken, _ := env.RegisterMember("asker@example.com", "Asker")

	status, raw := env.AuthPOST("/messages", memberToken, map[string]string{
		"subject": "Membership fee",
		"content": "What is the annual fee?",
	})
	require.Equal(t, http.StatusCreated, status)
	var msg domain.Message
	env.Decode(raw, &msg)

	t.Run("empty response rejected", func(t *testing.T) {
		status, _ := env.AuthPOST("/admin/messages/"+msg.ID.String()+"/respond",
			adminToken, map[string]string{"response": ""})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("responding marks read and stamps time", func(t *testing.T) {
		status, raw := env.AuthPOST("/admin/messages/"+msg.ID.String()+"/respond",
			adminToken, map[string]string{"response": "Rs 2000 per year."})
		require.Equal(t, http.StatusOK, status, "body: %s", raw)

		var answered domain.Message
		env.Decode(raw, &answered)
		assert.Equal(t, "Rs 2000 per year.", answered.AdminResponse)
		assert.True(t, answered.IsRead)
		require.NotNil(t, answered.RespondedAt)

		status, raw = env.AuthGET("/admin/messages/unread-count", adminToken)
		require.Equal(t, http.StatusOK, status)
		var count struct {
			Unread int `json:"unread"`
		}
		env.Decode(raw, &count)
		assert.Equal(t, 0, count.Unread)
	})

	t.Run("unknown message 404", func(t *testing.T) {
		status, _ := env.AuthPOST("/admin/messages/00000000-0000-0000-0000-000000000001/respond",
			adminToken, map[string]string{"response": "hello?"})
		assert.Equal(t, http.StatusNotFound, status)
	})
}
