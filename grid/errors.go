// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Match with errors.Is; call sites wrap
// them with method and coordinate context.
var (
	// ErrInvalidWidth indicates a negative width was requested.
	ErrInvalidWidth = errors.New("grid: width must be >= 0")

	// ErrInvalidShape indicates Resize received a negative width or height.
	ErrInvalidShape = errors.New("grid: width and height must be >= 0")

	// ErrTooLarge indicates a requested cell count, or its size in bytes,
	// does not fit in an int.
	ErrTooLarge = errors.New("grid: shape too large")

	// ErrRaggedData indicates flat input whose length is not a whole number of rows.
	ErrRaggedData = errors.New("grid: data length is not a multiple of width")

	// ErrOutOfRange indicates a checked accessor was given a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// method tags used in error wrappers
const (
	ctxNew    = "New"
	ctxFrom   = "FromSlice"
	ctxResize = "Resize"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
)

// gridErrorf attaches the method name and the two integer arguments of the
// failing call to a sentinel.
func gridErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, a, b, err)
}
