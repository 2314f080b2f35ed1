//go:build integration

package testutil

import (
	"context"
	"time"
)

// CleanAll truncates all tables in reverse-dependency order and resets the
// member ID sequence.
func (env *TestEnv) CleanAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tables := []string{
		"event_outbox",
		"messages",
		"matches",
		"teams",
		"tournaments",
		"players",
		"users",
	}
	for _, table := range tables {
		if _, err := env.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			env.t.Fatalf("truncate %s: %v", table, err)
		}
	}
	if _, err := env.Pool.Exec(ctx, "ALTER SEQUENCE member_id_seq RESTART WITH 1"); err != nil {
		env.t.Fatalf("reset member_id_seq: %v", err)
	}
}
