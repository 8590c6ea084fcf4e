package application_test

import (
	"context"
	"testing"

	eventadapter "github.com/mergington/activities/internal/adapters/events"
	"github.com/mergington/activities/internal/adapters/memory"
	"github.com/mergington/activities/internal/application"
	"github.com/mergington/activities/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestService() (*application.Service, *eventadapter.MemoryPublisher) {
	repo := memory.NewActivityRepository([]domain.Activity{
		{Name: "Chess Club", Description: "Chess", Schedule: "Fridays", MaxParticipants: 12, Participants: []string{"michael@mergington.edu"}},
		{Name: "Tennis Club", Description: "Tennis", Schedule: "Tuesdays", MaxParticipants: 10},
	})
	publisher := eventadapter.NewMemoryPublisher()
	svc := application.NewService(application.Dependencies{
		Activities: repo,
		Events:     publisher,
	})
	return svc, publisher
}

func TestSignup_Success(t *testing.T) {
	svc, publisher := newTestService()
	ctx := context.Background()

	message, err := svc.Signup(ctx, "Tennis Club", "new@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Signed up new@mergington.edu for Tennis Club", message)

	rows, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Contains(t, rows["Tennis Club"].Participants, "new@mergington.edu")

	published := publisher.Events()
	require.Len(t, published, 1)
	require.Equal(t, domain.EventRosterSignup, published[0].EventType)
	require.Equal(t, "Tennis Club", published[0].Activity)
	require.Equal(t, "new@mergington.edu", published[0].Email)
	require.NotEmpty(t, published[0].EventID)
	require.False(t, published[0].OccurredAt.IsZero())
}

func TestSignup_DuplicateRejected(t *testing.T) {
	svc, publisher := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Tennis Club", "new@mergington.edu")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, "Tennis Club", "new@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	// The rejected attempt publishes nothing.
	require.Len(t, publisher.Events(), 1)
}

func TestSignup_UnknownActivity(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Signup(context.Background(), "Rocket Club", "new@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignup_BlankInput(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Signup(context.Background(), "Tennis Club", "  ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Signup(context.Background(), "", "new@mergington.edu")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnregister_Success(t *testing.T) {
	svc, publisher := newTestService()
	ctx := context.Background()

	message, err := svc.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Unregistered michael@mergington.edu from Chess Club", message)

	rows, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.NotContains(t, rows["Chess Club"].Participants, "michael@mergington.edu")

	published := publisher.Events()
	require.Len(t, published, 1)
	require.Equal(t, domain.EventRosterUnregister, published[0].EventType)
}

func TestUnregister_Failures(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Unregister(ctx, "Rocket Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	_, err = svc.Unregister(ctx, "Chess Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestRoster_SignupThreeUnregisterTwo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	students := []string{"student0@mergington.edu", "student1@mergington.edu", "student2@mergington.edu"}
	for _, email := range students {
		_, err := svc.Signup(ctx, "Tennis Club", email)
		require.NoError(t, err)
	}

	_, err := svc.Unregister(ctx, "Tennis Club", students[0])
	require.NoError(t, err)
	_, err = svc.Unregister(ctx, "Tennis Club", students[2])
	require.NoError(t, err)

	rows, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{students[1]}, rows["Tennis Club"].Participants)
}
