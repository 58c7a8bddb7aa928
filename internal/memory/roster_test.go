package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/rpggio/roster/internal/repository"
	"github.com/stretchr/testify/require"
)

func testSeed() []roster.Activity {
	return []roster.Activity{
		{
			Name:            "Test Activity",
			Description:     "A test activity",
			Schedule:        "Test schedule",
			MaxParticipants: 3,
			Participants:    []string{"student1@mergington.edu", "student2@mergington.edu"},
		},
		{
			Name:            "Empty Activity",
			Description:     "An empty test activity",
			Schedule:        "Test schedule",
			MaxParticipants: 2,
			Participants:    []string{},
		},
	}
}

func newStore(t *testing.T) *RosterStore {
	t.Helper()
	store, err := NewRosterStore(testSeed())
	require.NoError(t, err)
	return store
}

func TestRosterStore_ListKeepsSeedOrder(t *testing.T) {
	store := newStore(t)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Test Activity", list[0].Name)
	require.Equal(t, "Empty Activity", list[1].Name)
}

func TestRosterStore_ReturnsCopies(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	list, err := store.List(ctx)
	require.NoError(t, err)
	list[0].Participants[0] = "mallory@mergington.edu"

	act, err := store.Get(ctx, "Test Activity")
	require.NoError(t, err)
	require.Equal(t, "student1@mergington.edu", act.Participants[0])
}

func TestRosterStore_SeedIsCopied(t *testing.T) {
	seed := testSeed()
	store, err := NewRosterStore(seed)
	require.NoError(t, err)

	seed[0].Participants[0] = "changed@mergington.edu"

	act, err := store.Get(context.Background(), "Test Activity")
	require.NoError(t, err)
	require.Equal(t, "student1@mergington.edu", act.Participants[0])
}

func TestRosterStore_RejectsInvalidSeed(t *testing.T) {
	seed := testSeed()
	seed[1].Name = seed[0].Name

	_, err := NewRosterStore(seed)
	require.ErrorIs(t, err, roster.ErrInvalidInput)
}

func TestRosterStore_AddParticipant(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	act, err := store.AddParticipant(ctx, "Test Activity", "new@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"student1@mergington.edu", "student2@mergington.edu", "new@mergington.edu"}, act.Participants)

	_, err = store.AddParticipant(ctx, "Test Activity", "new@mergington.edu")
	require.ErrorIs(t, err, repository.ErrConflict)

	_, err = store.AddParticipant(ctx, "Nope", "new@mergington.edu")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRosterStore_RemoveParticipantPreservesOrder(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.AddParticipant(ctx, "Test Activity", "student3@mergington.edu")
	require.NoError(t, err)

	act, err := store.RemoveParticipant(ctx, "Test Activity", "student2@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"student1@mergington.edu", "student3@mergington.edu"}, act.Participants)

	_, err = store.RemoveParticipant(ctx, "Empty Activity", "student1@mergington.edu")
	require.ErrorIs(t, err, repository.ErrNotMember)

	_, err = store.RemoveParticipant(ctx, "Nope", "student1@mergington.edu")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRosterStore_ConcurrentSignups(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.AddParticipant(ctx, "Empty Activity", fmt.Sprintf("s%d@mergington.edu", i))
		}(i)
	}
	wg.Wait()

	act, err := store.Get(ctx, "Empty Activity")
	require.NoError(t, err)
	require.Len(t, act.Participants, n)
}

func TestRosterStore_ConcurrentDuplicateSignups(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.AddParticipant(ctx, "Empty Activity", "same@mergington.edu"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	act, err := store.Get(ctx, "Empty Activity")
	require.NoError(t, err)
	require.Equal(t, []string{"same@mergington.edu"}, act.Participants)
}
