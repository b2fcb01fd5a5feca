package pubsub

import (
	"context"
	"encoding/json"
)

// Event[T] binds a topic name to a payload type so publishers and
// subscribers cannot disagree on the wire format.
type Event[T any] struct {
	topicName string
}

// NewEvent declares a typed event. Events are usually defined at package
// level next to the component that owns the topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
	})
}

// SubscribeTyped registers a handler that receives decoded payloads instead
// of raw messages. Messages that fail to decode are reported as handler
// errors.
func SubscribeTyped[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		return handler(ctx, payload)
	})
}
