package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	first := NewSubscriber()
	second := NewSubscriber()
	h.Register <- first
	h.Register <- second

	h.Broadcast <- []byte("<nav>updated</nav>")

	for _, sub := range []*Subscriber{first, second} {
		select {
		case got := <-sub.Send:
			assert.Equal(t, "<nav>updated</nav>", string(got))
		case <-time.After(2 * time.Second):
			t.Fatal("subscriber did not receive the broadcast")
		}
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	sub := NewSubscriber()
	h.Register <- sub
	h.Unregister <- sub

	select {
	case _, ok := <-sub.Send:
		assert.False(t, ok, "send channel closes on unregister")
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestShutdownClosesAllSubscribers(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	sub := NewSubscriber()
	h.Register <- sub
	cancel()

	select {
	case _, ok := <-sub.Send:
		assert.False(t, ok, "send channel closes on shutdown")
	case <-time.After(2 * time.Second):
		t.Fatal("send channel was not closed on shutdown")
	}
}
