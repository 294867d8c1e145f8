// SPDX-License-Identifier: MIT

// Package grid - flat row-major storage, accessors and growth.
//
// Purpose:
//   - Keep a 2D array in one contiguous []T with the explicit offset formula width*y + x.
//   - Offer an unchecked hot path (Get/Ref) next to a checked path (At/Set/Row).
//   - Grow by whole rows (GrowRow) or reshape the raw buffer (Resize).
//
// Complexity quicksheet:
//   - New: O(width) zero-init; FromSlice: O(1), adopts the slice.
//   - Get/Ref/At/Set/Row: O(1); GrowRow: amortized O(width); Clone: O(len).

package grid

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a 2D container of T stored row-major in a single flat slice.
//   - width is the column count (>= 0).
//   - data holds width*height elements; cell (x, y) is data[width*y+x].
//
// The zero value is an empty grid (width 0, height 0) ready for Resize.
// A Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	width int // column count; 0 means no well-defined row
	data  []T // contiguous row-major storage, len == width*height
}

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a grid of the given width holding exactly one zero-valued row.
// New(0) yields an empty grid (width 0, height 0).
//
// Implementation:
//   - Stage 1: reject width < 0 with ErrInvalidWidth.
//   - Stage 2: resolve options; reject a width*capRows reservation that
//     overflows with ErrTooLarge.
//   - Stage 3: allocate one zero-valued row plus the reserved capacity.
//
// Complexity:
//   - Time O(width*capRows) for allocation, Space the same.
func New[T any](width int, opts ...Option) (*Grid[T], error) {
	if width < 0 {
		return nil, fmt.Errorf("Grid.%s(%d): %w", ctxNew, width, ErrInvalidWidth)
	}
	cfg := newConfig(opts...)
	capRows := max(cfg.capRows, 1)
	if !cellsFit[T](width, capRows) {
		return nil, gridErrorf(ctxNew, width, capRows, ErrTooLarge)
	}

	// make() zero-fills the first row; the rest is spare capacity.
	data := make([]T, width, width*capRows)

	return &Grid[T]{width: width, data: data}, nil
}

// FromSlice wraps data as a grid of the given width. The grid takes ownership
// of data without copying it; the caller must not keep using the slice.
// Height is len(data)/width.
//
// Unlike a bare reinterpretation, the length is validated: a trailing partial
// row would be unreachable by (x, y) yet still counted as storage, so it is
// rejected with ErrRaggedData. Width 0 accepts only empty data.
//
// Complexity: O(1).
func FromSlice[T any](width int, data []T) (*Grid[T], error) {
	if width < 0 {
		return nil, gridErrorf(ctxFrom, width, len(data), ErrInvalidWidth)
	}
	if width == 0 {
		if len(data) != 0 {
			return nil, gridErrorf(ctxFrom, width, len(data), ErrRaggedData)
		}

		return &Grid[T]{}, nil
	}
	if len(data)%width != 0 {
		return nil, gridErrorf(ctxFrom, width, len(data), ErrRaggedData)
	}

	return &Grid[T]{width: width, data: data}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows, 0 when the width is 0.
func (g *Grid[T]) Height() int {
	if g.width == 0 {
		return 0
	}

	return len(g.data) / g.width
}

// Len returns the total number of cells, Width()*Height().
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// Offset returns the flat row-major index of (x, y). No bounds check.
func (g *Grid[T]) Offset(x, y int) int {
	return g.width*y + x
}

// Coord converts a flat index back to (x, y). A zero-width grid maps every
// index to (0, 0).
func (g *Grid[T]) Coord(i int) (x, y int) {
	if g.width == 0 {
		return 0, 0
	}

	return i % g.width, i / g.width
}

// Get returns the value at (x, y).
//
// UNCHECKED: requires 0 <= x < Width() and 0 <= y < Height(). A bad x reads a
// cell of another row; a flat offset outside the buffer panics in the runtime.
// Use At for a checked read.
func (g *Grid[T]) Get(x, y int) T {
	return g.data[g.width*y+x]
}

// Ref returns a pointer to the cell at (x, y); writes through it change the
// grid in place. Same preconditions as Get. The pointer is invalidated by a
// reallocating GrowRow or Resize, and by Clear.
func (g *Grid[T]) Ref(x, y int) *T {
	return &g.data[g.width*y+x]
}

// inBounds reports whether (x, y) addresses a stored cell.
func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// At is the checked counterpart of Get.
// Returns ErrOutOfRange (wrapped with coordinates) instead of reading a wrong
// cell or panicking.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, gridErrorf(ctxAt, x, y, ErrOutOfRange)
	}

	return g.data[g.width*y+x], nil
}

// Set is the checked write of v at (x, y).
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.inBounds(x, y) {
		return gridErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	g.data[g.width*y+x] = v

	return nil
}

// Row returns row y as a view into the backing slice. Writes through the view
// change the grid; its capacity is clipped to the row so append cannot spill
// into row y+1.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= g.Height() {
		return nil, gridErrorf(ctxRow, 0, y, ErrOutOfRange)
	}
	lo := g.width * y
	hi := lo + g.width

	return g.data[lo:hi:hi], nil
}

// GrowRow appends one zero-valued row. Width and every existing (x, y) value
// are unchanged; Height grows by exactly one. On a zero-width grid it is a
// no-op, since a row of zero cells adds no height.
//
// May reallocate the backing slice: pointers from Ref/RefAt/Refs must be
// re-obtained afterwards. Iterators keep working.
// Complexity: amortized O(width).
func (g *Grid[T]) GrowRow() {
	n := len(g.data)
	g.data = slices.Grow(g.data, g.width)[:n+g.width]
	// spare capacity may hold cells dropped by an earlier shrink
	clear(g.data[n:])
}

// Resize sets the width to w and reshapes the backing slice to exactly w*h
// cells. Cells past the new length are dropped; new cells are zero-valued.
//
// This is a raw reshape of the flat buffer, not a coordinate-preserving
// transform: after a width change, the value formerly at (x, y) is found at
// Coord(oldWidth*y + x). A height-only change keeps every surviving (x, y).
// With w == 0 the grid ends up empty whatever h is.
//
// Implementation:
//   - Stage 1: reject negative w or h with ErrInvalidShape, and a w*h that
//     overflows with ErrTooLarge. The grid is left untouched on error.
//   - Stage 2: shrink (zeroing the dropped tail) or grow (zeroing the new tail).
//   - Stage 3: store the new width.
//
// Complexity:
//   - Time O(|w*h - Len()|), plus O(w*h) copy when growth reallocates.
func (g *Grid[T]) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return gridErrorf(ctxResize, w, h, ErrInvalidShape)
	}
	if !cellsFit[T](w, h) {
		return gridErrorf(ctxResize, w, h, ErrTooLarge)
	}
	n, old := w*h, len(g.data)
	switch {
	case n < old:
		clear(g.data[n:old]) // drop references held by discarded cells
		g.data = g.data[:n]
	case n > old:
		g.data = slices.Grow(g.data, n-old)[:n]
		clear(g.data[old:])
	}
	g.width = w

	return nil
}

// Clear empties the grid and resets the width to 0. Capacity is kept for reuse.
// All outstanding pointers and iterators are invalidated.
func (g *Grid[T]) Clear() {
	clear(g.data)
	g.data = g.data[:0]
	g.width = 0
}

// Clone returns an independent copy with the same shape. Elements are copied
// by assignment, so pointer-like T still share their referents.
// Complexity: O(Len()).
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, data: slices.Clone(g.data)}
}

// Values yields every cell value in row-major order. The sequence reads the
// grid's current state each time it is ranged over.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Refs yields a pointer to every cell in row-major order; writing through the
// pointer updates the grid. Do not GrowRow or Resize while ranging.
func (g *Grid[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// Rows yields (y, row view) pairs top to bottom. Views alias the grid like Row.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		h := g.Height()
		for y := 0; y < h; y++ {
			lo := g.width * y
			hi := lo + g.width
			if !yield(y, g.data[lo:hi:hi]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(Len()).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.WriteString(_fmtRowOpen)
		for x, v := range row {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
