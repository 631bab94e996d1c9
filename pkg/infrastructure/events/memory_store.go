package events

import (
	"sync"
	"time"
)

// InMemoryStore keeps the event log in process memory. Safe for concurrent
// use.
type InMemoryStore struct {
	mutex       sync.RWMutex
	streams     map[string][]Event
	allEvents   []Event
	subscribers map[string][]Handler
}

// NewInMemoryStore creates an empty in-memory event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]Handler),
	}
}

var _ Store = (*InMemoryStore)(nil)

// Append adds an event to the stream, assigning the next version number, and
// notifies subscribers.
func (s *InMemoryStore) Append(streamID string, eventType string, data interface{}) error {
	s.mutex.Lock()

	event := Event{
		Type:      eventType,
		StreamID:  streamID,
		Data:      data,
		Timestamp: time.Now(),
		Version:   len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], event)
	s.allEvents = append(s.allEvents, event)
	handlers := append([]Handler(nil), s.subscribers[eventType]...)

	s.mutex.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
	return nil
}

// ReadStream returns the events of one stream starting at fromVersion
// (1-based).
func (s *InMemoryStore) ReadStream(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}
	return append([]Event(nil), stream[fromVersion-1:]...), nil
}

// ReadAll returns every event from the given global position (0-based).
func (s *InMemoryStore) ReadAll(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}
	return append([]Event(nil), s.allEvents[fromPosition:]...), nil
}

// Subscribe registers a handler for the given event types
func (s *InMemoryStore) Subscribe(eventTypes []string, handler Handler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
}
