// SPDX-License-Identifier: MIT

package random

import (
	"time"

	"golang.org/x/exp/rand"
)

const panicNilSource = "random: WithSource(nil)"

// Option customizes a Generator at construction time.
type Option func(*config)

type config struct {
	src rand.Source // nil until resolved
}

// WithSeed seeds a fresh locked PCG source with seed (deterministic).
// Use it in tests to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = newLockedSource(seed)
	}
}

// WithSource uses src as the entropy stream. The caller owns the concurrency
// story of src: only a concurrency-safe source (such as *rand.LockedSource)
// makes the Generator safe to share. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}
	return func(c *config) {
		c.src = src
	}
}

// newConfig applies opts in order and falls back to a clock-seeded source.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = newLockedSource(uint64(time.Now().UnixNano()))
	}

	return cfg
}

func newLockedSource(seed uint64) *rand.LockedSource {
	src := &rand.LockedSource{}
	src.Seed(seed)

	return src
}
