package ports

import (
	"context"

	"github.com/mergington/activities/internal/domain"
)

// ActivityRepository is the activity registry. Implementations own the
// check-then-mutate step for roster changes so callers never observe a
// half-applied mutation.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]domain.Activity, error)
	Get(ctx context.Context, name string) (domain.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.RosterEvent) error
}
