package domain

import "time"

const (
	EventRosterSignup     = "roster.signup"
	EventRosterUnregister = "roster.unregister"
)

// RosterEvent records a single mutation of an activity roster.
type RosterEvent struct {
	EventID    string
	EventType  string
	Activity   string
	Email      string
	OccurredAt time.Time
}

func IsRosterEventType(eventType string) bool {
	switch eventType {
	case EventRosterSignup, EventRosterUnregister:
		return true
	default:
		return false
	}
}
