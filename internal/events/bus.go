package events

import (
	"sync"
	"time"
)

// Bus is an in-process, synchronous event fan-out.
// Publish runs every listener in subscription order on the caller's goroutine,
// which keeps delivery inside the TUI's single event loop.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]Listener
	order     []int
	nextID    int
	sequence  int64
	now       func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Calling the returned function more than once is safe.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.order = append(b.order, id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.listeners, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish stamps the event with the next sequence number and, when unset, the
// current time, then delivers it to every listener.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	// Snapshot so listeners can subscribe or unsubscribe while handling
	listeners := make([]Listener, 0, len(b.order))
	for _, id := range b.order {
		listeners = append(listeners, b.listeners[id])
	}
	b.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// Len returns the number of registered listeners
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}
