// Package nbkit is a small kit of generic building blocks meant to be
// embedded in larger programs.
//
// Packages:
//
//	grid/       Grid[T], a 2D container in one flat row-major slice, with
//	            checked and unchecked accessors and random-access iterators
//	event/      Event[T], an ordered callback list (Subscribe / Notify / Clear)
//	random/     uniform float / inclusive int / fair coin helpers over a
//	            seeded, lock-protected PCG source
//	singleton/  lazily built, process-lifetime single instances
//
// The packages do not depend on each other. See examples/life for a program
// that uses all four.
//
//	go get github.com/nico-bertoli/nbkit
package nbkit
