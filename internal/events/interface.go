package events

// Publisher defines the interface for announcing chore changes.
// The store handle depends on this behavior rather than on the Bus so tests
// can record events without any listeners.
type Publisher interface {
	// Publish delivers an event to every interested party before returning
	Publish(event Event)
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
