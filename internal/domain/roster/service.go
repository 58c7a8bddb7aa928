package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/observability"
	"github.com/rpggio/roster/internal/repository"
)

const tracerName = "github.com/rpggio/roster/internal/domain/roster"

// Operation names used for metrics and spans.
const (
	OpSignUp     = "signup"
	OpUnregister = "unregister"
)

// Service handles roster reads and membership changes.
type Service struct {
	repo    Repository
	journal Journal
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewService creates a new roster service. journal and logger may be nil.
func NewService(repo Repository, journal Journal, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		journal: journal,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// SignupMessage is the confirmation returned after a successful signup.
func SignupMessage(email, name string) string {
	return fmt.Sprintf("Signed up %s for %s", email, name)
}

// UnregisterMessage is the confirmation returned after a successful unregister.
func UnregisterMessage(email, name string) string {
	return fmt.Sprintf("Unregistered %s from %s", email, name)
}

// List returns every activity in roster order.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	ctx, span := s.tracer.Start(ctx, "roster.List")
	defer span.End()

	activities, err := s.repo.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	span.SetAttributes(attribute.Int("roster.activities", len(activities)))
	return activities, nil
}

// ReportParticipants publishes the current participant count of every
// activity. Call it once at startup; mutations keep the counts current after.
func (s *Service) ReportParticipants(ctx context.Context) error {
	activities, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, act := range activities {
		observability.RecordParticipants(act.Name, len(act.Participants))
	}
	return nil
}

// Get fetches a single activity by name.
func (s *Service) Get(ctx context.Context, name string) (*Activity, error) {
	ctx, span := s.tracer.Start(ctx, "roster.Get", trace.WithAttributes(attribute.String("roster.activity", name)))
	defer span.End()

	act, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return act, nil
}

// SignUp appends email to the activity's participants.
func (s *Service) SignUp(ctx context.Context, name, email string) (*Activity, error) {
	ctx, span := s.tracer.Start(ctx, "roster.SignUp", trace.WithAttributes(attribute.String("roster.activity", name)))
	defer span.End()

	act, err := s.mutate(ctx, OpSignUp, name, email, s.repo.AddParticipant)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.record(ctx, enrollment.TypeSignedUp, name, email)
	return act, nil
}

// Unregister removes email from the activity's participants.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	ctx, span := s.tracer.Start(ctx, "roster.Unregister", trace.WithAttributes(attribute.String("roster.activity", name)))
	defer span.End()

	act, err := s.mutate(ctx, OpUnregister, name, email, s.repo.RemoveParticipant)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.record(ctx, enrollment.TypeUnregistered, name, email)
	return act, nil
}

type mutation func(ctx context.Context, name, email string) (*Activity, error)

func (s *Service) mutate(ctx context.Context, op, name, email string, apply mutation) (*Activity, error) {
	if err := validateEmail(email); err != nil {
		observability.RecordEnrollment(op, Outcome(err))
		return nil, err
	}

	act, err := apply(ctx, name, email)
	if err != nil {
		err = mapRepoError(err)
		observability.RecordEnrollment(op, Outcome(err))
		if s.logger != nil {
			s.logger.InfoContext(ctx, "roster change rejected", "op", op, "activity", name, "email", email, "error", err)
		}
		return nil, err
	}

	observability.RecordEnrollment(op, Outcome(nil))
	observability.RecordParticipants(act.Name, len(act.Participants))
	if s.logger != nil {
		s.logger.DebugContext(ctx, "roster changed", "op", op, "activity", name, "email", email, "participants", len(act.Participants))
	}
	return act, nil
}

func (s *Service) record(ctx context.Context, typ enrollment.EventType, name, email string) {
	if s.journal == nil {
		return
	}
	err := s.journal.Record(ctx, &enrollment.Event{
		Activity: name,
		Email:    email,
		Type:     typ,
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to journal roster change", "type", typ, "activity", name, "error", err)
	}
}

// Outcome classifies an operation result for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrAlreadyRegistered
	case errors.Is(err, repository.ErrNotMember):
		return ErrNotRegistered
	case errors.Is(err, repository.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return fmt.Errorf("updating roster: %w", err)
	}
}
