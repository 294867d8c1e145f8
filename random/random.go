// SPDX-License-Identifier: MIT

package random

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const panicBadRange = "random: lo > hi"

// fairCoin maps a uniform [0, 1) draw to 0 or 1 with equal probability.
var fairCoin = distuv.Bernoulli{P: 0.5}

// Generator draws uniform values from a single rand.Source.
//
// Float and coin draws map a [0, 1) value from rng through the distribution's
// Quantile, so no per-draw rand.Rand is built.
// Safe for concurrent use when its source is (the default *rand.LockedSource is).
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator configured by opts. Without WithSeed or WithSource
// it is seeded from the wall clock.
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)

	return &Generator{rng: rand.New(cfg.src)}
}

// Seed resets the underlying source to a deterministic state.
func (g *Generator) Seed(seed uint64) {
	g.rng.Seed(seed)
}

// Float64 returns a uniform value in [lo, hi); lo when lo == hi.
// Panics if lo > hi.
func (g *Generator) Float64(lo, hi float64) float64 {
	return FloatIn(g, lo, hi)
}

// Int returns a uniform value in [lo, hi], both ends included.
// Panics if lo > hi.
func (g *Generator) Int(lo, hi int) int {
	return IntIn(g, lo, hi)
}

// Bool returns true or false with equal probability.
func (g *Generator) Bool() bool {
	return fairCoin.Quantile(g.rng.Float64()) == 1
}

// FloatIn returns a uniform value of any float type in [lo, hi). For
// float32 the rounding of the conversion can land on hi itself.
// Panics if lo > hi.
func FloatIn[T constraints.Float](g *Generator, lo, hi T) T {
	if lo > hi {
		panic(panicBadRange)
	}
	u := distuv.Uniform{Min: float64(lo), Max: float64(hi)}

	return T(u.Quantile(g.rng.Float64()))
}

// IntIn returns a uniform value of any integer type in [lo, hi], inclusive.
// The full range of the type is supported. Panics if lo > hi.
//
// Arithmetic runs in uint64, where two's complement wrapping makes the
// span and the offset exact for every signed and unsigned width.
func IntIn[T constraints.Integer](g *Generator, lo, hi T) T {
	if lo > hi {
		panic(panicBadRange)
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// [lo, hi] covers all 2^64 values
		return T(g.rng.Uint64())
	}

	return T(uint64(lo) + g.rng.Uint64n(span))
}

// ---------- package-level default generator ----------

var std = New()

// Seed reseeds the default generator used by the package-level helpers.
func Seed(seed uint64) { std.Seed(seed) }

// Float64 draws from the default generator; see Generator.Float64.
func Float64(lo, hi float64) float64 { return std.Float64(lo, hi) }

// Int draws from the default generator; see Generator.Int.
func Int(lo, hi int) int { return std.Int(lo, hi) }

// Bool draws from the default generator; see Generator.Bool.
func Bool() bool { return std.Bool() }
