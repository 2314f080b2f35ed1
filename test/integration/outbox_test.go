//go:build integration

package integration

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/infra"
	"github.com/bgc/platform/internal/repository"
	"github.com/bgc/platform/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOutbox(t *testing.T, env *testutil.TestEnv, where string) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err := env.Pool.QueryRow(ctx, "SELECT count(*) FROM event_outbox WHERE "+where).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestOutboxEvents(t *testing.T) {
	env := testutil.NewTestEnv(t)

	adminToken, _ := env.RegisterAdmin("organizer@example.com")
	tournament := env.CreateTournament(adminToken, 4)

	memberToken, member := env.RegisterMember("captain@example.com", "Captain")
	player := env.CreatePlayer(memberToken)
	status, _ := env.RegisterTeam(memberToken, tournament.ID.String(), "Eventful XI",
		[]domain.TeamPlayer{testutil.RosterEntry(player.ID, "Captain", member.UniqueID)})
	require.Equal(t, http.StatusCreated, status)

	// Profile completion and team registration both write outbox rows in the
	// same transaction as the mutation.
	assert.GreaterOrEqual(t, countOutbox(t, env, "event_type = 'bgc.user.profile.completed'"), 2)
	assert.Equal(t, 1, countOutbox(t, env, "event_type = 'bgc.team.registered'"))
	assert.Equal(t, 0, countOutbox(t, env, "published_at IS NOT NULL"))

	t.Run("poller drains unpublished rows", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		producer := infra.NewKafkaProducer("", false, logger)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		poller := infra.NewOutboxPoller(env.Pool, repository.NewOutboxRepository(), producer, logger)
		poller.Start(ctx)

		require.Eventually(t, func() bool {
			var n int
			err := env.Pool.QueryRow(ctx,
				"SELECT count(*) FROM event_outbox WHERE published_at IS NULL").Scan(&n)
			return err == nil && n == 0
		}, 10*time.Second, 200*time.Millisecond, "poller should mark every row published")
	})
}
