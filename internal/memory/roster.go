// Package memory holds the in-process roster. Nothing here survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/rpggio/roster/internal/repository"
)

// RosterStore implements roster.Repository over a mutex-guarded map.
// Writers hold the lock for the whole check-then-mutate step.
type RosterStore struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*roster.Activity
}

// NewRosterStore builds a store from seed, keeping seed order.
func NewRosterStore(seed []roster.Activity) (*RosterStore, error) {
	if err := roster.ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("invalid roster seed: %w", err)
	}
	s := &RosterStore{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*roster.Activity, len(seed)),
	}
	for _, a := range seed {
		act := a.Clone()
		s.order = append(s.order, act.Name)
		s.activities[act.Name] = &act
	}
	return s, nil
}

// List returns copies of every activity in seed order.
func (s *RosterStore) List(_ context.Context) ([]roster.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]roster.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.activities[name].Clone())
	}
	return out, nil
}

// Get returns a copy of the named activity.
func (s *RosterStore) Get(_ context.Context, name string) (*roster.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := act.Clone()
	return &out, nil
}

// AddParticipant appends email unless it is already on the roster.
func (s *RosterStore) AddParticipant(_ context.Context, name, email string) (*roster.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if act.HasParticipant(email) {
		return nil, repository.ErrConflict
	}
	act.Participants = append(act.Participants, email)

	out := act.Clone()
	return &out, nil
}

// RemoveParticipant removes email, keeping the order of the others.
func (s *RosterStore) RemoveParticipant(_ context.Context, name, email string) (*roster.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, repository.ErrNotMember
	}
	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)

	out := act.Clone()
	return &out, nil
}
