// Package event provides Event[T], an ordered list of callbacks notified with
// a payload of type T.
//
// Usage:
//
//	var moved event.Event[Point]
//	moved.Subscribe(func(p Point) { log.Println("moved to", p) })
//	moved.Notify(Point{X: 1, Y: 2})
//
// Callbacks run synchronously on the notifying goroutine, in subscription
// order. Notify works on a snapshot of the list, so a callback may Subscribe
// or Clear re-entrantly; the change applies from the next Notify.
//
// For payload-less events use Signal, an Event[struct{}] with Fire.
//
// Event is safe for concurrent use. The zero value is ready to use.
package event
