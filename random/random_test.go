// Package random_test checks ranges, determinism and rough uniformity of the
// random helpers.
package random_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/nico-bertoli/nbkit/random"
)

const (
	seed       = 42
	iterations = 1000
)

// TestFloat64WithinRange covers positive, negative and mixed ranges.
func TestFloat64WithinRange(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	cases := []struct {
		name   string
		lo, hi float64
	}{
		{"positive", 0, 10},
		{"negative", -10, -5},
		{"mixed", -5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < iterations; i++ {
				v := g.Float64(tc.lo, tc.hi)
				require.GreaterOrEqual(t, v, tc.lo)
				require.LessOrEqual(t, v, tc.hi)
			}
		})
	}
}

// TestFloat64SameBounds returns the bound itself.
func TestFloat64SameBounds(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	for i := 0; i < 100; i++ {
		require.Equal(t, 42.5, g.Float64(42.5, 42.5))
	}
}

// TestFloat64Variety ensures draws spread over the range.
func TestFloat64Variety(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	buckets := make(map[int]struct{})
	for i := 0; i < iterations; i++ {
		buckets[int(g.Float64(0, 100))] = struct{}{}
	}
	require.Greater(t, len(buckets), 50)
}

// TestFloat64Moments compares sample mean/variance with U(a,b).
func TestFloat64Moments(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	const a, b, n = 2.0, 8.0, 20000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.Float64(a, b)
	}
	mean, variance := stat.MeanVariance(xs, nil)
	require.InDelta(t, (a+b)/2, mean, 0.1)
	require.InDelta(t, (b-a)*(b-a)/12, variance, 0.15)
}

// TestIntWithinRange covers positive, negative and mixed inclusive ranges.
func TestIntWithinRange(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"positive", 0, 10},
		{"negative", -10, -5},
		{"mixed", -5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < iterations; i++ {
				v := g.Int(tc.lo, tc.hi)
				require.GreaterOrEqual(t, v, tc.lo)
				require.LessOrEqual(t, v, tc.hi)
				seen[v] = true
			}
			require.Len(t, seen, tc.hi-tc.lo+1) // both ends reachable
		})
	}
}

// TestIntSingleValue returns the only value in a one-element range.
func TestIntSingleValue(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	for i := 0; i < 100; i++ {
		require.Equal(t, 7, g.Int(7, 7))
	}
}

// TestIntVariety ensures many distinct integers are produced.
func TestIntVariety(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	seen := make(map[int]struct{})
	for i := 0; i < iterations; i++ {
		seen[g.Int(0, 100)] = struct{}{}
	}
	require.Greater(t, len(seen), 50)
}

// TestIntInWidths exercises the generic helper across integer widths.
func TestIntInWidths(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	for i := 0; i < iterations; i++ {
		v8 := random.IntIn[int8](g, -128, 127)
		require.GreaterOrEqual(t, v8, int8(-128))

		u := random.IntIn[uint16](g, 10, 20)
		require.GreaterOrEqual(t, u, uint16(10))
		require.LessOrEqual(t, u, uint16(20))

		big := random.IntIn[int64](g, math.MinInt64, math.MaxInt64) // full range
		_ = big

		hi := random.IntIn[uint64](g, math.MaxUint64-1, math.MaxUint64)
		require.GreaterOrEqual(t, hi, uint64(math.MaxUint64-1))
	}
}

// TestFloatInFloat32 keeps float32 draws inside the closed range.
func TestFloatInFloat32(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	for i := 0; i < iterations; i++ {
		v := random.FloatIn[float32](g, -1, 1)
		require.GreaterOrEqual(t, v, float32(-1))
		require.LessOrEqual(t, v, float32(1))
	}
}

// TestBadRangePanics surfaces lo > hi as a programmer error.
func TestBadRangePanics(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	require.Panics(t, func() { g.Int(5, 4) })
	require.Panics(t, func() { g.Float64(1, 0) })
	require.Panics(t, func() { random.WithSource(nil) })
}

// TestBoolProducesBoth checks both outcomes appear.
func TestBoolProducesBoth(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	foundTrue, foundFalse := false, false
	for i := 0; i < iterations && !(foundTrue && foundFalse); i++ {
		if g.Bool() {
			foundTrue = true
		} else {
			foundFalse = true
		}
	}
	require.True(t, foundTrue)
	require.True(t, foundFalse)
}

// TestBoolDistribution checks the coin is roughly fair.
func TestBoolDistribution(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	const n = 10000
	xs := make([]float64, n)
	for i := range xs {
		if g.Bool() {
			xs[i] = 1
		}
	}
	ratio := stat.Mean(xs, nil)
	require.Greater(t, ratio, 0.40)
	require.Less(t, ratio, 0.60)
}

// TestSeedDeterminism: equal seeds yield equal sequences; Seed rewinds.
func TestSeedDeterminism(t *testing.T) {
	a := random.New(random.WithSeed(7))
	b := random.New(random.WithSeed(7))
	var first []int
	for i := 0; i < 50; i++ {
		x, y := a.Int(0, 1_000_000), b.Int(0, 1_000_000)
		require.Equal(t, x, y)
		first = append(first, x)
	}

	a.Seed(7)
	for i := 0; i < 50; i++ {
		require.Equal(t, first[i], a.Int(0, 1_000_000))
	}
}

// TestWithSource plugs an explicit x/exp/rand source.
func TestWithSource(t *testing.T) {
	a := random.New(random.WithSource(rand.NewSource(99)))
	b := random.New(random.WithSource(rand.NewSource(99)))
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Float64(0, 1), b.Float64(0, 1))
	}
}

// TestPackageLevelHelpers reseeds the default generator for reproducibility.
func TestPackageLevelHelpers(t *testing.T) {
	random.Seed(seed)
	x := random.Int(0, 1000)
	f := random.Float64(-1, 1)
	c := random.Bool()

	random.Seed(seed)
	require.Equal(t, x, random.Int(0, 1000))
	require.Equal(t, f, random.Float64(-1, 1))
	require.Equal(t, c, random.Bool())
}

// TestConcurrentDraws shares one Generator across goroutines under -race.
func TestConcurrentDraws(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v := g.Int(1, 6)
				if v < 1 || v > 6 {
					t.Errorf("die roll out of range: %d", v)
					return
				}
				_ = g.Float64(0, 1)
				_ = g.Bool()
			}
		}()
	}
	wg.Wait()
}

// TestDrawsDoNotAllocate keeps float and coin draws off the heap.
func TestDrawsDoNotAllocate(t *testing.T) {
	g := random.New(random.WithSeed(seed))
	var sinkF float64
	var sinkB bool

	allocs := testing.AllocsPerRun(100, func() {
		sinkF = g.Float64(-1, 1)
		sinkB = g.Bool()
	})
	require.Zero(t, allocs)
	require.GreaterOrEqual(t, sinkF, -1.0)
	_ = sinkB
}
