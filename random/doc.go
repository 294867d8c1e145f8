// Package random offers small uniform-distribution helpers: a float in a
// range, an integer in an inclusive range, and a fair coin.
//
// A Generator wraps a PCG source from golang.org/x/exp/rand behind a lock, so
// one Generator may be shared between goroutines. Draws are shaped with
// gonum's distuv distributions.
//
// Determinism:
//
//   - New(WithSeed(s)) always produces the same sequence for the same s.
//   - Without a seed, New seeds from the wall clock.
//   - The package-level Float64/Int/Bool use a default Generator that can be
//     reseeded with Seed, for reproducible tests.
//
// Ranges:
//
//   - Float64(lo, hi) returns a value in [lo, hi); exactly lo when lo == hi.
//   - Int(lo, hi) returns a value in [lo, hi], both ends included.
//   - lo > hi is a programmer error and panics.
package random
