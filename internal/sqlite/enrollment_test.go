package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/repository"
	"github.com/stretchr/testify/require"
)

func logEvent(t *testing.T, repo *EnrollmentRepository, id, activity, email string, typ enrollment.EventType) {
	t.Helper()
	require.NoError(t, repo.Log(context.Background(), &enrollment.Event{
		ID:        id,
		Activity:  activity,
		Email:     email,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}))
}

func TestEnrollmentRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(db)

	logEvent(t, repo, "e1", "Chess Club", "bob@mergington.edu", enrollment.TypeSignedUp)
	logEvent(t, repo, "e2", "Chess Club", "bob@mergington.edu", enrollment.TypeUnregistered)

	events, err := repo.List(ctx, enrollment.ListOptions{Activity: "Chess Club"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "e2", events[0].ID)
	require.Equal(t, enrollment.TypeUnregistered, events[0].Type)
	require.Equal(t, "e1", events[1].ID)
	require.False(t, events[1].CreatedAt.IsZero())
}

func TestEnrollmentRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(db)

	logEvent(t, repo, "e1", "Chess Club", "bob@mergington.edu", enrollment.TypeSignedUp)
	logEvent(t, repo, "e2", "Art Club", "bob@mergington.edu", enrollment.TypeSignedUp)
	logEvent(t, repo, "e3", "Art Club", "mia@mergington.edu", enrollment.TypeSignedUp)

	events, err := repo.List(ctx, enrollment.ListOptions{Activity: "Art Club", Email: "bob@mergington.edu"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "e2", events[0].ID)

	events, err = repo.List(ctx, enrollment.ListOptions{Email: "bob@mergington.edu"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	events, err = repo.List(ctx, enrollment.ListOptions{Activity: "Drama Club"})
	require.NoError(t, err)
	require.Len(t, events, 0)
}

func TestEnrollmentRepository_Paging(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepository(db)

	logEvent(t, repo, "e1", "Chess Club", "a@mergington.edu", enrollment.TypeSignedUp)
	logEvent(t, repo, "e2", "Chess Club", "b@mergington.edu", enrollment.TypeSignedUp)
	logEvent(t, repo, "e3", "Chess Club", "c@mergington.edu", enrollment.TypeSignedUp)

	events, err := repo.List(ctx, enrollment.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "e3", events[0].ID)

	events, err = repo.List(ctx, enrollment.ListOptions{Offset: 2})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "e1", events[0].ID)
}

func TestEnrollmentRepository_DuplicateID(t *testing.T) {
	db := NewTestDB(t)
	repo := NewEnrollmentRepository(db)

	logEvent(t, repo, "e1", "Chess Club", "a@mergington.edu", enrollment.TypeSignedUp)
	err := repo.Log(context.Background(), &enrollment.Event{
		ID:       "e1",
		Activity: "Chess Club",
		Email:    "a@mergington.edu",
		Type:     enrollment.TypeSignedUp,
	})
	require.ErrorIs(t, err, repository.ErrConflict)
}
