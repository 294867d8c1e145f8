// SPDX-License-Identifier: MIT

// Package singleton provides lazily-constructed, process-lifetime single
// instances.
//
// Two flavours:
//
//   - Holder[T] wraps an explicit constructor. The first Instance call runs it;
//     every later call returns the same pointer.
//   - Of[T]() is keyed by type alone: the first call for a given T allocates a
//     zero T (running its Init method if it has one) and every later call for
//     that T returns the same pointer, anywhere in the process.
//
// Construction is goroutine-safe and happens at most once per Holder or type.
// Instances live until the process exits; there is no teardown hook, the
// garbage collector reclaims them with the program.
//
// To keep callers from building a second instance, give the singleton type an
// unexported name and expose it only through a function returning Of[...]().
package singleton

import (
	"reflect"
	"sync"
)

const panicNilConstructor = "singleton: NewHolder(nil)"

// Initializer is implemented by types that need set-up beyond their zero
// value when created by Of. Init runs once, before Of returns the instance.
type Initializer interface {
	Init()
}

// Holder lazily builds and then keeps one *T.
type Holder[T any] struct {
	get func() *T
}

// NewHolder returns a Holder that will call ctor on first use. Panics on nil ctor.
// If ctor panics, every Instance call re-panics with the same value.
func NewHolder[T any](ctor func() *T) *Holder[T] {
	if ctor == nil {
		panic(panicNilConstructor)
	}

	return &Holder[T]{get: sync.OnceValue(ctor)}
}

// Instance returns the single instance, constructing it on the first call.
func (h *Holder[T]) Instance() *T {
	return h.get()
}

// registry maps reflect.Type -> *Holder[T] for Of.
var registry sync.Map

// Of returns the process-wide instance of T, creating it on first use.
//
// Init on a new instance may call Of for other types. Calling Of[T] from
// T's own Init deadlocks.
func Of[T any]() *T {
	key := reflect.TypeFor[T]()
	if h, ok := registry.Load(key); ok {
		return h.(*Holder[T]).Instance()
	}
	h, _ := registry.LoadOrStore(key, NewHolder(newInstance[T]))

	return h.(*Holder[T]).Instance()
}

func newInstance[T any]() *T {
	inst := new(T)
	if in, ok := any(inst).(Initializer); ok {
		in.Init()
	}

	return inst
}
