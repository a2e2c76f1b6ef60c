package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gift-exchange-service/internal/events"
)

func TestDispatcherFanOut(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var first, second int
	dispatcher.Subscribe(events.EventParticipantJoined, func(ctx context.Context, e events.Event) error {
		first++
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(events.EventParticipantJoined, func(ctx context.Context, e events.Event) error {
		second++
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventParticipantJoined})
	require.NoError(t, err, "handler failures never surface to the publisher")
	require.Equal(t, 1, first)
	require.Equal(t, 1, second, "a failing handler does not block later ones")
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var called int
	dispatcher.Subscribe(events.EventAssignmentsDrawn, func(ctx context.Context, e events.Event) error {
		called++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventParticipantRemoved}))
	require.Zero(t, called)
}
