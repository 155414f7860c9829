// SPDX-License-Identifier: MIT
// Package: codenum/codeenum
//
// rows.go — row-sets decoded from a single combination.
//
// One combin.Combination(2^rowsLength, rowsNumber) draw is decoded into
// rowsNumber bit-rows: value v becomes a row with bit c of v in column c.
//
// Restriction: because the draw is a combination, the rows of every emitted
// matrix are pairwise distinct as integers and appear in increasing order.
// This is not the Cartesian product of all row assignments; matrices with a
// repeated row, or with rows out of increasing order, are never produced.

package codeenum

import (
	"iter"

	"github.com/katalvlaran/codenum/combin"
	"github.com/katalvlaran/codenum/gf2"
)

const (
	methodNewRows = "NewRows"
	methodRowsNxt = "Rows.Next"
)

// Rows enumerates rowsNumber×rowsLength matrices with distinct,
// increasing rows.
type Rows struct {
	number, length int
	inner          *combin.Combination
}

// NewRows requires rowsNumber ≥ 0, rowsLength ≥ 0 and
// rowsNumber ≤ 2^rowsLength. Oversized rowsLength returns ErrOverflowGuard.
func NewRows(rowsNumber, rowsLength int) (*Rows, error) {
	if rowsNumber < 0 || rowsLength < 0 {
		return nil, constructionErrorf(methodNewRows, "negative shape %dx%d", rowsNumber, rowsLength)
	}
	if err := checkPatternBits(methodNewRows, rowsLength); err != nil {
		return nil, err
	}
	inner, err := combin.NewCombination(1<<rowsLength, rowsNumber)
	if err != nil {
		return nil, constructionErrorf(methodNewRows, "%d distinct rows of length %d", rowsNumber, rowsLength)
	}

	return &Rows{number: rowsNumber, length: rowsLength, inner: inner}, nil
}

// HasNext reports whether another row-set remains.
func (r *Rows) HasNext() bool { return r.inner.HasNext() }

// NextValues returns the raw integer rows of the next row-set.
func (r *Rows) NextValues() ([]int, error) {
	if !r.inner.HasNext() {
		return nil, exhaustedError(methodRowsNxt)
	}

	return r.inner.Next()
}

// Next returns the next row-set as a matrix.
func (r *Rows) Next() (*gf2.BitMatrix, error) {
	vals, err := r.NextValues()
	if err != nil {
		return nil, err
	}
	rows := make([]uint64, len(vals))
	for i, v := range vals {
		rows[i] = uint64(v)
	}

	return gf2.BitMatrixFromRows(r.length, rows)
}

// All adapts the enumerator to a range-over-func sequence.
func (r *Rows) All() iter.Seq[*gf2.BitMatrix] {
	return func(yield func(*gf2.BitMatrix) bool) {
		for r.HasNext() {
			m, err := r.Next()
			if err != nil || !yield(m) {
				return
			}
		}
	}
}
