// Package pubsub provides a small typed publish/subscribe broker used to move
// background notifications (file changes, log lines) into the Bubble Tea loop.
package pubsub

import "time"

// EventType labels what happened to the payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event wraps a payload with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
