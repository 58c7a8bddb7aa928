package roster

import (
	"context"

	"github.com/rpggio/roster/internal/domain/enrollment"
)

// Repository holds the roster. AddParticipant and RemoveParticipant must run
// their membership check and mutation as one atomic step.
type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// Journal receives an event for every successful roster mutation.
type Journal interface {
	Record(ctx context.Context, event *enrollment.Event) error
}
