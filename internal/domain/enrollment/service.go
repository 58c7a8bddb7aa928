package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MaxListLimit caps how many events a single listing returns.
const MaxListLimit = 200

// Service handles enrollment journal operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new enrollment journal service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record stores an event, filling in the ID and timestamp if missing.
func (s *Service) Record(ctx context.Context, event *Event) error {
	if event == nil || event.Activity == "" || event.Email == "" {
		return ErrInvalidInput
	}
	switch event.Type {
	case TypeSignedUp, TypeUnregistered:
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, event.Type)
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Log(ctx, event); err != nil {
		return fmt.Errorf("recording enrollment event: %w", err)
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "enrollment recorded", "id", event.ID, "type", event.Type, "activity", event.Activity)
	}
	return nil
}

// Recent lists events newest first.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Event, error) {
	if opts.Limit < 0 || opts.Offset < 0 {
		return nil, ErrInvalidInput
	}
	if opts.Limit == 0 || opts.Limit > MaxListLimit {
		opts.Limit = MaxListLimit
	}
	events, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing enrollment events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}
