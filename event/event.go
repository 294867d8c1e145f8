// SPDX-License-Identifier: MIT

package event

import "sync"

const panicNilCallback = "event: Subscribe(nil)"

// Event is an ordered callback list. Must not be copied after first use.
type Event[T any] struct {
	mu        sync.RWMutex // guards callbacks
	callbacks []func(T)
}

// Subscribe appends fn to the callback list. Subscribing the same function
// twice makes it run twice per Notify. Panics on nil fn.
// Complexity: amortized O(1).
func (e *Event[T]) Subscribe(fn func(T)) {
	if fn == nil {
		panic(panicNilCallback)
	}
	e.mu.Lock()
	e.callbacks = append(e.callbacks, fn)
	e.mu.Unlock()
}

// Notify calls every subscribed callback with v, in subscription order.
// With no subscribers it does nothing.
// Complexity: O(n) in the number of callbacks.
func (e *Event[T]) Notify(v T) {
	e.mu.RLock()
	// Subscribe only appends and Clear drops the slice, so this header is a
	// stable snapshot once the lock is released.
	snapshot := e.callbacks
	e.mu.RUnlock()

	for _, fn := range snapshot {
		fn(v)
	}
}

// Clear removes every callback.
func (e *Event[T]) Clear() {
	e.mu.Lock()
	e.callbacks = nil
	e.mu.Unlock()
}

// Len reports the number of subscribed callbacks.
func (e *Event[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.callbacks)
}

// Signal is an event without payload.
type Signal = Event[struct{}]

// Fire notifies a payload-less event. Equivalent to Notify(struct{}{}).
func Fire(s *Signal) {
	s.Notify(struct{}{})
}
