// SPDX-License-Identifier: MIT

// Package grid - shape checks shared by New and Resize.
//
// Checks are pure and allocate nothing; call sites wrap the sentinel.

package grid

import (
	"math"
	"unsafe"
)

// cellsFit reports whether cols*rows cells of T are addressable: neither the
// cell count nor its byte size may overflow int. Both arguments are >= 0.
func cellsFit[T any](cols, rows int) bool {
	if cols == 0 || rows == 0 {
		return true
	}
	if cols > math.MaxInt/rows {
		return false
	}
	var zero T
	size := int(unsafe.Sizeof(zero))

	return size == 0 || cols*rows <= math.MaxInt/size
}
