package events

import (
	"time"
)

// Event is one immutable audit record. Version is assigned by the store on
// append, per stream.
type Event struct {
	Type      string
	StreamID  string
	Data      interface{}
	Timestamp time.Time
	Version   int
}

// Handler receives events it subscribed to. Handlers run synchronously on the
// appending goroutine; slow handlers belong behind a channel.
type Handler func(event Event)

// Store is an append-only event log with per-stream versioning.
type Store interface {
	Append(streamID string, eventType string, data interface{}) error
	ReadStream(streamID string, fromVersion int) ([]Event, error)
	ReadAll(fromPosition int) ([]Event, error)
	Subscribe(eventTypes []string, handler Handler)
}
