package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishFillsEnvelope(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got Event
	d.Subscribe(EventTicketOpened, func(_ context.Context, event Event) error {
		got = event
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketOpened, ActorID: "user-a"})
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.False(t, got.Timestamp.IsZero())
	require.Equal(t, "user-a", got.ActorID)
}

func TestPublishContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventTicketClosed, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventTicketClosed, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketClosed}))
	require.Equal(t, 2, calls)
}

func TestPublishWithoutListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketRejected}))
}
