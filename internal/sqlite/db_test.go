package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", "enrollment_events").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "table enrollment_events not found")

	// Applying again must not fail.
	require.NoError(t, db.RunMigrations())
}

// TestEventTypeConstraint verifies unknown event types are rejected
func TestEventTypeConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO enrollment_events (id, activity, email, event_type) VALUES (?, ?, ?, ?)`,
		"e1", "Chess Club", "a@mergington.edu", "signed_up")
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO enrollment_events (id, activity, email, event_type) VALUES (?, ?, ?, ?)`,
		"e2", "Chess Club", "a@mergington.edu", "joined")
	require.Error(t, err, "should fail with invalid event type")
}
