package mocks

import (
	"context"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/stretchr/testify/mock"
)

// RosterRepository is a mock for roster.Repository.
type RosterRepository struct {
	mock.Mock
}

func (m *RosterRepository) List(ctx context.Context) ([]roster.Activity, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]roster.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RosterRepository) Get(ctx context.Context, name string) (*roster.Activity, error) {
	args := m.Called(ctx, name)
	if act, ok := args.Get(0).(*roster.Activity); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RosterRepository) AddParticipant(ctx context.Context, name, email string) (*roster.Activity, error) {
	args := m.Called(ctx, name, email)
	if act, ok := args.Get(0).(*roster.Activity); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RosterRepository) RemoveParticipant(ctx context.Context, name, email string) (*roster.Activity, error) {
	args := m.Called(ctx, name, email)
	if act, ok := args.Get(0).(*roster.Activity); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

// EnrollmentRepository is a mock for enrollment.Repository.
type EnrollmentRepository struct {
	mock.Mock
}

func (m *EnrollmentRepository) Log(ctx context.Context, event *enrollment.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EnrollmentRepository) List(ctx context.Context, opts enrollment.ListOptions) ([]enrollment.Event, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]enrollment.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Journal is a mock for roster.Journal.
type Journal struct {
	mock.Mock
}

func (m *Journal) Record(ctx context.Context, event *enrollment.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
