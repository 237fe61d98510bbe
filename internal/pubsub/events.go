// Package pubsub provides a generic publish/subscribe event system used to
// fan countdown, config and log events out to the UI and CLI consumers.
package pubsub

import (
	"context"
	"time"
)

// EventType names the kind of event being published. Publishers define their
// own values; the ones below are shared across packages.
type EventType string

const (
	// CreatedEvent marks a newly produced item, such as a log entry.
	CreatedEvent EventType = "created"
	// ChangedEvent marks a change to something watched, such as the config file.
	ChangedEvent EventType = "changed"
	// ErrorEvent carries a failure from a background producer.
	ErrorEvent EventType = "error"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
