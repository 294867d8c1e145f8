// Package grid provides Grid[T], a generic 2D container stored as one flat,
// row-major slice.
//
// What:
//
//   - Grid[T] keeps a width and a single contiguous []T; row y occupies
//     data[width*y : width*y+width] and cell (x, y) lives at data[width*y+x].
//   - Height is derived: len(data)/width, or 0 when width is 0.
//   - Rows can be appended one at a time (GrowRow) or the whole buffer can be
//     reshaped (Resize). Clear drops everything and resets the width to 0.
//   - Two random-access iterators walk the flat buffer in row-major order:
//     Iterator[T] (read/write) and ConstIterator[T] (read-only).
//
// Why:
//
//   - Tile maps, cellular automata, board games, image-like buffers: anything
//     that wants (x, y) addressing without [][]T fragmentation.
//   - One allocation, cache-friendly scans, O(1) coordinate → offset.
//
// Access policy:
//
//   - Get, Ref and iterator dereference are UNCHECKED. They compute the flat
//     offset and index the slice; no (x, y) validation is done. An x outside
//     [0, width) silently aliases a neighbouring row, and an offset outside the
//     buffer panics through the Go runtime's own bounds check.
//   - At, Set and Row are CHECKED and return ErrOutOfRange instead.
//   - Pick one per call site; the unchecked path never grows checks.
//
// Invalidation:
//
//   - Iterators are (grid, offset) pairs and survive reallocation of the
//     backing slice, but an iterator beyond the end after a shrinking Resize
//     or Clear is invalid.
//   - Pointers returned by Ref, RefAt or Refs are invalidated by any GrowRow
//     or Resize that reallocates, and by Clear.
//   - Resize is a raw reshape of the flat buffer. Changing the width remaps
//     every stored coordinate; only GrowRow (or a height-only Resize) keeps
//     existing (x, y) values in place.
//
// Complexity:
//
//   - Width/Height/Get/Ref/At/Set: O(1).
//   - GrowRow: amortized O(width). Resize: O(|Δlen|) plus copy on reallocation.
//   - All iterator operations: O(1).
//
// Concurrency:
//
//   - A Grid has no internal locking. Concurrent readers are fine once writes
//     happen-before them; any concurrent writer needs external synchronization.
//
// Errors:
//
//   - ErrInvalidWidth: negative width passed to New or FromSlice.
//   - ErrInvalidShape: negative width or height passed to Resize.
//   - ErrTooLarge: a New reservation or Resize shape whose cell count or byte
//     size overflows int.
//   - ErrRaggedData: FromSlice data length is not a multiple of width.
//   - ErrOutOfRange: checked accessor coordinate outside the grid.
package grid
