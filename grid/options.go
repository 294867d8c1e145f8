// SPDX-License-Identifier: MIT

package grid

// DefaultCapacityRows is the number of rows reserved by New when no
// WithCapacity option is given: exactly the one row New creates.
const DefaultCapacityRows = 1

const panicCapacityNegative = "grid: WithCapacity: rows must be >= 0"

// Option customizes a Grid at construction time.
type Option func(*config)

// config holds construction knobs. Passed by value once resolved.
type config struct {
	capRows int // rows of backing capacity to reserve up front
}

// WithCapacity reserves backing capacity for rows rows, so that GrowRow does
// not reallocate until the grid is taller than that. Values below the initial
// height are ignored. Panics on negative input.
// Complexity: O(1).
func WithCapacity(rows int) Option {
	if rows < 0 {
		panic(panicCapacityNegative)
	}
	return func(c *config) {
		c.capRows = rows
	}
}

// newConfig applies opts over the defaults, last one wins.
func newConfig(opts ...Option) config {
	cfg := config{capRows: DefaultCapacityRows}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
