package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Name string `json:"name"`
}

func TestTypedEventRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	event := NewEvent[greeting]("test.greeting")
	received := make(chan greeting, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := SubscribeTyped(ctx, bridge, event, func(ctx context.Context, payload greeting) error {
		received <- payload
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, Publish(ctx, bridge, event, greeting{Name: "hub"}))

	select {
	case got := <-received:
		assert.Equal(t, "hub", got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestEventName(t *testing.T) {
	event := NewEvent[greeting]("auth.token.changed")
	assert.Equal(t, "auth.token.changed", event.Name())
}
