package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/repository"
)

// EnrollmentRepository implements enrollment.Repository for SQLite
type EnrollmentRepository struct {
	db *DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Log inserts a new journal event
func (r *EnrollmentRepository) Log(ctx context.Context, event *enrollment.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO enrollment_events (id, activity, email, event_type, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Activity,
		event.Email,
		string(event.Type),
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("event %s: %w", event.ID, repository.ErrConflict)
		}
		return fmt.Errorf("failed to log enrollment event: %w", err)
	}

	event.CreatedAt = createdAt
	return nil
}

// List returns journal events matching the given filters, newest first
func (r *EnrollmentRepository) List(ctx context.Context, opts enrollment.ListOptions) ([]enrollment.Event, error) {
	query := `
		SELECT id, activity, email, event_type, created_at
		FROM enrollment_events
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.Activity != "" {
		conditions = append(conditions, "activity = ?")
		args = append(args, opts.Activity)
	}
	if opts.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opts.Email)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY seq DESC"

	// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded.
	if opts.Limit > 0 || opts.Offset > 0 {
		limit := opts.Limit
		if limit <= 0 {
			limit = -1
		}
		query += " LIMIT ?"
		args = append(args, limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollment events: %w", err)
	}
	defer rows.Close()

	var events []enrollment.Event
	for rows.Next() {
		var (
			event     enrollment.Event
			eventType string
		)
		if err := rows.Scan(
			&event.ID,
			&event.Activity,
			&event.Email,
			&eventType,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment event: %w", err)
		}
		event.Type = enrollment.EventType(eventType)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return events, nil
}
