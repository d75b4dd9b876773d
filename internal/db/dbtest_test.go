package db

import (
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to TEST_DATABASE_URL, applies migrations, and
// truncates tenant data so every test starts from an empty schema. Tests
// built on it are skipped when no test database is configured.
func newTestStore(t *testing.T) (Store, *sqlx.DB) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL environment variable is not set")
	}

	conn, err := Connect(dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, RunMigrations(conn, "../../migrations"))

	// customers is the root of every FK chain, so one truncate wipes all
	_, err = conn.Exec(`TRUNCATE customers RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)

	return NewStore(conn), conn
}
