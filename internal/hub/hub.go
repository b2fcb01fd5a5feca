// Package hub fans rendered HTML fragments out to connected pages. The
// back office uses it to refresh every open page's navigation bar when the
// auth session changes.
package hub

import (
	"context"
	"log/slog"
)

// Subscriber represents a single connected page.
type Subscriber struct {
	// Send is a buffered channel of outbound fragments. The Hub writes to
	// it; the owning connection drains it.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a small send buffer.
func NewSubscriber() *Subscriber {
	return &Subscriber{Send: make(chan []byte, 8)}
}

// Hub is a concurrent broadcast bus. It maintains the set of active
// subscribers and delivers every broadcast to all of them.
type Hub struct {
	subscribers map[*Subscriber]struct{}

	// Broadcast is the channel for inbound fragments from any component.
	Broadcast chan []byte

	// Register adds a new subscriber to the hub.
	Register chan *Subscriber

	// Unregister removes a subscriber from the hub.
	Unregister chan *Subscriber
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Run processes registrations and broadcasts until the context ends. It
// must run in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for sub := range h.subscribers {
				close(sub.Send)
				delete(h.subscribers, sub)
			}
			return

		case sub := <-h.Register:
			h.subscribers[sub] = struct{}{}
			slog.Debug("Hub subscriber registered", "total", len(h.subscribers))

		case sub := <-h.Unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
				slog.Debug("Hub subscriber unregistered", "total", len(h.subscribers))
			}

		case fragment := <-h.Broadcast:
			for sub := range h.subscribers {
				// Non-blocking send: a page that stopped draining its
				// buffer loses fragments rather than stalling the hub.
				select {
				case sub.Send <- fragment:
				default:
					slog.Warn("Hub subscriber buffer full, dropping fragment")
				}
			}
		}
	}
}
