// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// at the boundary; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a vector whose length does not match the
	// row or column it is written to, or a label list of the wrong size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownLabel indicates that no column carries the requested label.
	ErrUnknownLabel = errors.New("matrix: unknown column label")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
