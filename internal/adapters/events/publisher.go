package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// MemoryPublisher records published events in order. Used by tests and as a
// stand-in where no log sink is wanted.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []domain.RosterEvent
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(_ context.Context, event domain.RosterEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Events() []domain.RosterEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.RosterEvent(nil), p.events...)
}

// LoggingPublisher emits each roster event as a structured log line.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger.With("module", "events", "layer", "adapter")}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event domain.RosterEvent) error {
	p.logger.InfoContext(ctx, "roster event",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"activity", event.Activity,
		"email", event.Email,
		"occurred_at", event.OccurredAt,
	)
	return nil
}
