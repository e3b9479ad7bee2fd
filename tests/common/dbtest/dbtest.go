//go:build integration

// Package dbtest provides schema and fixture helpers for tests that run
// against a real PostgreSQL instance.
package dbtest

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"event-bookings/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ApplyMigrations runs the repository's schema DDL.
func ApplyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "failed to locate dbtest source file")

	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "migrations", "001_init.sql")
	ddl, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read migration file")

	_, err = pool.Exec(context.Background(), string(ddl))
	require.NoError(t, err, "failed to apply migrations")
}

// Truncate clears all tables between tests.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE bookings, events")
	require.NoError(t, err)
}

func CreateTestEvent(t *testing.T, dbtx db.DBTX, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := dbtx.Exec(context.Background(),
		`INSERT INTO events (id, name, starts_at, created_at) VALUES ($1, $2, $3, $4)`,
		id, name, now.Add(24*time.Hour), now,
	)
	require.NoError(t, err)

	return id
}

func CountBookings(t *testing.T, dbtx db.DBTX) int {
	t.Helper()

	var count int
	err := dbtx.QueryRow(context.Background(), `SELECT count(*) FROM bookings`).Scan(&count)
	require.NoError(t, err)

	return count
}
