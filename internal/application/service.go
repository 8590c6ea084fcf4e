package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mergington/activities/internal/domain"
)

// ListActivities returns the full registry keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	return s.activities.List(ctx)
}

// Signup adds email to the named activity's roster and returns the
// confirmation message for the caller.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", domain.ErrInvalidInput
	}
	if err := s.activities.AddParticipant(ctx, name, email); err != nil {
		return "", err
	}
	s.publish(ctx, domain.EventRosterSignup, name, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", domain.ErrInvalidInput
	}
	if err := s.activities.RemoveParticipant(ctx, name, email); err != nil {
		return "", err
	}
	s.publish(ctx, domain.EventRosterUnregister, name, email)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// publish is best-effort: a roster event that cannot be delivered is logged
// and never fails the request that produced it.
func (s *Service) publish(ctx context.Context, eventType, activity, email string) {
	if s.events == nil {
		return
	}
	event := domain.RosterEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   activity,
		Email:      email,
		OccurredAt: s.nowFn(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		slog.Default().WarnContext(ctx, "publish roster event failed",
			"service", s.cfg.ServiceName,
			"event_type", eventType,
			"activity", activity,
			"error", err.Error(),
		)
	}
}
