// SPDX-License-Identifier: MIT

// Package grid - random-access iterators over the flat buffer.
//
// Both Iterator[T] and ConstIterator[T] are a (grid, offset) pair. The shared
// position algebra lives once in cursor[T]; the two public types only add the
// typed wrappers, plus write access for Iterator.
//
// Contract:
//   - Order is row-major: (0,0), (1,0), ..., (w-1,0), (0,1), ...
//   - Every operation is O(1). Only iterators from the same grid may be
//     compared or subtracted.
//   - Dereferencing End/CEnd, or any iterator moved outside [Begin, End), is
//     unchecked; the runtime's bounds check panics on the bad offset.
//   - Because the offset is an index, not an address, iterators survive
//     backing reallocation. Shrinking Resize and Clear leave iterators beyond
//     the new end invalid.

package grid

import "cmp"

// cursor is the shared state and position logic for both iterator kinds.
type cursor[T any] struct {
	g   *Grid[T]
	pos int
}

// Index returns the flat row-major offset of the iterator.
func (c cursor[T]) Index() int { return c.pos }

// Coord returns the (x, y) cell the iterator points at.
func (c cursor[T]) Coord() (x, y int) { return c.g.Coord(c.pos) }

// Value returns the current element (dereference).
func (c cursor[T]) Value() T { return c.g.data[c.pos] }

// At returns the element n positions away, the subscript it[n].
func (c cursor[T]) At(n int) T { return c.g.data[c.pos+n] }

// Advance moves the iterator n positions in place (it += n). n may be negative.
func (c *cursor[T]) Advance(n int) { c.pos += n }

// Rewind moves the iterator n positions back in place (it -= n).
func (c *cursor[T]) Rewind(n int) { c.pos -= n }

func (c cursor[T]) moved(n int) cursor[T] {
	return cursor[T]{g: c.g, pos: c.pos + n}
}

func (c cursor[T]) compare(o cursor[T]) int {
	return cmp.Compare(c.pos, o.pos)
}

// ---------- Iterator (read/write) ----------

// Iterator is a mutable random-access iterator over a Grid.
// The zero value is not usable; obtain one from Begin or End.
type Iterator[T any] struct {
	cursor[T]
}

// Begin returns a mutable iterator at the first cell.
func (g *Grid[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{g: g, pos: 0}}
}

// End returns a mutable iterator one past the last cell.
// Begin() == End() iff the grid holds no cells.
func (g *Grid[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{g: g, pos: len(g.data)}}
}

// Ref returns a pointer to the current element; writes go to the grid.
func (it Iterator[T]) Ref() *T { return &it.g.data[it.pos] }

// Set writes v into the current element.
func (it Iterator[T]) Set(v T) { it.g.data[it.pos] = v }

// RefAt returns a pointer to the element n positions away.
func (it Iterator[T]) RefAt(n int) *T { return &it.g.data[it.pos+n] }

// Next advances by one and returns the new position (pre-increment).
func (it *Iterator[T]) Next() Iterator[T] {
	it.pos++
	return *it
}

// PostNext advances by one and returns the previous position (post-increment).
func (it *Iterator[T]) PostNext() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Prev steps back by one and returns the new position (pre-decrement).
func (it *Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return *it
}

// PostPrev steps back by one and returns the previous position (post-decrement).
func (it *Iterator[T]) PostPrev() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// Add returns a new iterator n positions ahead (it + n).
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.moved(n)} }

// Sub returns a new iterator n positions behind (it - n).
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.moved(-n)} }

// Distance returns it - from: the signed number of increments that take from to it.
func (it Iterator[T]) Distance(from Iterator[T]) int { return it.pos - from.pos }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) int { return it.compare(o.cursor) }

// Equal reports it == o.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.cursor == o.cursor }

// Less reports it < o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// LessEq reports it <= o.
func (it Iterator[T]) LessEq(o Iterator[T]) bool { return it.pos <= o.pos }

// Greater reports it > o.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.pos > o.pos }

// GreaterEq reports it >= o.
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return it.pos >= o.pos }

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ---------- ConstIterator (read-only) ----------

// ConstIterator is a read-only random-access iterator over a Grid. It offers
// no way to write to the grid.
type ConstIterator[T any] struct {
	cursor[T]
}

// CBegin returns a read-only iterator at the first cell.
func (g *Grid[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{g: g, pos: 0}}
}

// CEnd returns a read-only iterator one past the last cell.
func (g *Grid[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{g: g, pos: len(g.data)}}
}

// Next advances by one and returns the new position (pre-increment).
func (it *ConstIterator[T]) Next() ConstIterator[T] {
	it.pos++
	return *it
}

// PostNext advances by one and returns the previous position (post-increment).
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	old := *it
	it.pos++
	return old
}

// Prev steps back by one and returns the new position (pre-decrement).
func (it *ConstIterator[T]) Prev() ConstIterator[T] {
	it.pos--
	return *it
}

// PostPrev steps back by one and returns the previous position (post-decrement).
func (it *ConstIterator[T]) PostPrev() ConstIterator[T] {
	old := *it
	it.pos--
	return old
}

// Add returns a new iterator n positions ahead (it + n).
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it.moved(n)} }

// Sub returns a new iterator n positions behind (it - n).
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it.moved(-n)} }

// Distance returns it - from.
func (it ConstIterator[T]) Distance(from ConstIterator[T]) int { return it.pos - from.pos }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it ConstIterator[T]) Compare(o ConstIterator[T]) int { return it.compare(o.cursor) }

// Equal reports it == o.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.cursor == o.cursor }

// Less reports it < o.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool { return it.pos < o.pos }

// LessEq reports it <= o.
func (it ConstIterator[T]) LessEq(o ConstIterator[T]) bool { return it.pos <= o.pos }

// Greater reports it > o.
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool { return it.pos > o.pos }

// GreaterEq reports it >= o.
func (it ConstIterator[T]) GreaterEq(o ConstIterator[T]) bool { return it.pos >= o.pos }
