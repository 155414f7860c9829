// SPDX-License-Identifier: MIT

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for negative sizes, ragged textual rows,
	// characters other than '0' and '1', and bit patterns wider than the
	// declared shape.
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	// Public indexers return it instead of panicking.
	ErrOutOfRange = errors.New("gf2: index out of range")
)

// Method tags used in error wrappers.
const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxRowWeight    = "RowWeight"
	ctxColumnIsZero = "ColumnIsZero"
	ctxColumn       = "Column"
)

// indexErrorf wraps err with the receiver type, method and index.
func indexErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// shapeErrorf wraps ErrBadShape with the constructor name and shape.
func shapeErrorf(method string, rows, cols int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, rows, cols, ErrBadShape)
}
