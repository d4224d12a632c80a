package eventbus

import (
	"sync"
)

// Subscription is one handler attached to one topic.
//
// Unsubscribe is synchronous: it waits for an in-flight delivery to finish, and no delivery
// starts after it returns. It must not be called from the subscription's own handler.
type Subscription struct {
	id      uint64
	topic   string
	handler Handler
	bus     *InMemoryEventBus

	mu     sync.RWMutex
	active bool
	once   sync.Once
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Unsubscribe detaches the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s)

		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	})
}

// deliver runs the handler unless the subscription was released.
func (s *Subscription) deliver(event *Event) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active {
		return false, nil
	}
	return true, s.handler(event)
}
