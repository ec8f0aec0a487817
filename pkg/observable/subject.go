// Package observable provides a minimal current-value subject for stores that
// broadcast their state to subscribers.
package observable

import "sync"

const defaultBuffer = 8

// Option customises a Subject.
type Option[T any] func(*Subject[T])

// WithBuffer sets the per-subscriber channel capacity.
func WithBuffer[T any](size int) Option[T] {
	return func(s *Subject[T]) {
		if size > 0 {
			s.buffer = size
		}
	}
}

// WithClone sets the function used to copy values before they leave the
// subject, so subscribers never share mutable state with the store.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(s *Subject[T]) {
		if clone != nil {
			s.clone = clone
		}
	}
}

// Subject holds a current value and pushes every new value to its
// subscribers. New subscribers receive the current value first. Slow
// subscribers lose intermediate values but always see the latest one.
type Subject[T any] struct {
	mu          sync.RWMutex
	value       T
	buffer      int
	clone       func(T) T
	subscribers map[chan T]struct{}
}

// NewSubject creates a subject seeded with initial.
func NewSubject[T any](initial T, opts ...Option[T]) *Subject[T] {
	s := &Subject[T]{
		value:       initial,
		buffer:      defaultBuffer,
		clone:       func(v T) T { return v },
		subscribers: make(map[chan T]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Value returns a copy of the current value.
func (s *Subject[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.value)
}

// Next publishes value.
func (s *Subject[T]) Next(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.broadcast()
}

// Update applies fn to the current value and publishes the result. fn runs
// under the subject's lock and receives a copy.
func (s *Subject[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.clone(s.value))
	s.broadcast()
	return s.clone(s.value)
}

// Subscribe registers a subscriber. The returned function unsubscribes and
// closes the channel; calling it more than once is safe.
func (s *Subject[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan T, s.buffer)
	ch <- s.clone(s.value)
	s.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, ch)
			close(ch)
		})
	}
}

// Subscribers returns the number of active subscribers.
func (s *Subject[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *Subject[T]) broadcast() {
	for ch := range s.subscribers {
		value := s.clone(s.value)
		select {
		case ch <- value:
			continue
		default:
		}
		// Full buffer: drop the oldest pending value to make room.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- value:
		default:
		}
	}
}
