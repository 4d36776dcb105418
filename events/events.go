// Package events defines the advisory event sink used by the share issuer
// and the ownership ledger. Events are structured records for external
// observers; they are not required for correctness and sinks must never
// fail a ledger operation.
package events

import "sync"

// Event is a structured record emitted by a mutating operation.
type Event struct {
	Type       string
	Attributes map[string]string
}

// Sink receives emitted events.
type Sink interface {
	Emit(Event)
}

// NoopSink discards all events. It is the default sink.
type NoopSink struct{}

// Emit discards the event.
func (NoopSink) Emit(Event) {}

// MemSink collects emitted events in memory, for tests and audits.
type MemSink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemSink creates an empty in-memory sink.
func NewMemSink() *MemSink {
	return &MemSink{}
}

// Emit appends the event to the captured list.
func (s *MemSink) Emit(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of all captured events in emission order.
func (s *MemSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ByType returns captured events matching the given type.
func (s *MemSink) ByType(eventType string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Compile-time interface checks.
var (
	_ Sink = NoopSink{}
	_ Sink = (*MemSink)(nil)
)
