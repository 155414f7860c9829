// SPDX-License-Identifier: MIT
// Package: codenum/gf2
//
// bitmatrix.go — dense r×c matrices over GF(2), one bitset per row.
//
// Public indexers (At, Set, RowWeight, ColumnIsZero) validate their indices
// and return ErrOutOfRange wrapped with the method and index; constructors
// return ErrBadShape. Internal hot paths (Blocks, Xor, the pattern
// constructors) address rows directly once the shape is known to be valid.

package gf2

import (
	"strings"

	"github.com/willf/bitset"
)

// BitMatrix is a dense binary matrix.
type BitMatrix struct {
	rows, cols int
	data       []*bitset.BitSet
}

// NewBitMatrix returns an all-zero rows×cols matrix. Negative sizes return
// ErrBadShape; zero rows or columns are allowed.
func NewBitMatrix(rows, cols int) (*BitMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewBitMatrix", rows, cols)
	}

	return newBitMatrix(rows, cols), nil
}

// newBitMatrix allocates without validation; callers guarantee rows, cols ≥ 0.
func newBitMatrix(rows, cols int) *BitMatrix {
	m := &BitMatrix{rows: rows, cols: cols, data: make([]*bitset.BitSet, rows)}
	for i := range m.data {
		m.data[i] = bitset.New(uint(cols))
	}

	return m
}

// BitMatrixFromRows builds a len(rows)×cols matrix in which bit c of rows[i]
// is entry (i,c). cols must lie in [0, 64] and no row may set a bit at or
// above cols.
func BitMatrixFromRows(cols int, rows []uint64) (*BitMatrix, error) {
	if cols < 0 || cols > 64 {
		return nil, shapeErrorf("BitMatrixFromRows", len(rows), cols)
	}
	m := newBitMatrix(len(rows), cols)
	for i, v := range rows {
		if cols < 64 && v>>uint(cols) != 0 {
			return nil, shapeErrorf("BitMatrixFromRows", len(rows), cols)
		}
		for c := 0; v != 0; c, v = c+1, v>>1 {
			if v&1 == 1 {
				m.data[i].Set(uint(c))
			}
		}
	}

	return m, nil
}

// BitMatrixFromColumns builds a rows×len(cols) matrix in which bit r of
// cols[j] is entry (r,j). rows must lie in [0, 64] and no column may set a
// bit at or above rows.
func BitMatrixFromColumns(rows int, cols []uint64) (*BitMatrix, error) {
	if rows < 0 || rows > 64 {
		return nil, shapeErrorf("BitMatrixFromColumns", rows, len(cols))
	}
	m := newBitMatrix(rows, len(cols))
	for j, v := range cols {
		if rows < 64 && v>>uint(rows) != 0 {
			return nil, shapeErrorf("BitMatrixFromColumns", rows, len(cols))
		}
		for r := 0; v != 0; r, v = r+1, v>>1 {
			if v&1 == 1 {
				m.data[r].Set(uint(j))
			}
		}
	}

	return m, nil
}

// ParseBitMatrix builds a matrix from rows of '0'/'1' characters.
// All rows must share one length; an empty argument list yields a 0×0 matrix.
func ParseBitMatrix(rows ...string) (*BitMatrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := newBitMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for j := 0; j < cols; j++ {
			switch row[j] {
			case '0':
			case '1':
				m.data[i].Set(uint(j))
			default:
				return nil, ErrBadShape
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *BitMatrix) Cols() int { return m.cols }

func (m *BitMatrix) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns entry (i,j).
func (m *BitMatrix) At(i, j int) (bool, error) {
	if !m.inRange(i, j) {
		return false, indexErrorf("BitMatrix", ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i].Test(uint(j)), nil
}

// Set assigns entry (i,j).
func (m *BitMatrix) Set(i, j int, v bool) error {
	if !m.inRange(i, j) {
		return indexErrorf("BitMatrix", ctxSet, i, j, ErrOutOfRange)
	}
	if v {
		m.data[i].Set(uint(j))
	} else {
		m.data[i].Clear(uint(j))
	}

	return nil
}

// IsZero reports whether every entry is zero.
func (m *BitMatrix) IsZero() bool {
	for _, r := range m.data {
		if r.Any() {
			return false
		}
	}

	return true
}

// RowWeight returns the Hamming weight of row i.
func (m *BitMatrix) RowWeight(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, indexErrorf("BitMatrix", ctxRowWeight, i, 0, ErrOutOfRange)
	}

	return int(m.data[i].Count()), nil
}

// MinRowWeight returns the smallest row weight, or 0 for a matrix without
// rows.
func (m *BitMatrix) MinRowWeight() int {
	if m.rows == 0 {
		return 0
	}
	w := m.data[0].Count()
	for _, r := range m.data[1:] {
		w = min(w, r.Count())
	}

	return int(w)
}

// ColumnIsZero reports whether column j has no set entry.
func (m *BitMatrix) ColumnIsZero(j int) (bool, error) {
	if j < 0 || j >= m.cols {
		return false, indexErrorf("BitMatrix", ctxColumnIsZero, 0, j, ErrOutOfRange)
	}
	for _, r := range m.data {
		if r.Test(uint(j)) {
			return false, nil
		}
	}

	return true, nil
}

// ZeroColumns counts the all-zero columns. A matrix without rows has every
// column zero.
func (m *BitMatrix) ZeroColumns() int {
	n := 0
	for j := 0; j < m.cols; j++ {
		zero := true
		for _, r := range m.data {
			if r.Test(uint(j)) {
				zero = false
				break
			}
		}
		if zero {
			n++
		}
	}

	return n
}

// Xor sets m = m + o entry-wise. Shapes must match.
func (m *BitMatrix) Xor(o *BitMatrix) error {
	if m.rows != o.rows || m.cols != o.cols {
		return ErrDimensionMismatch
	}
	for i, r := range o.data {
		for j, ok := r.NextSet(0); ok; j, ok = r.NextSet(j + 1) {
			m.data[i].Flip(j)
		}
	}

	return nil
}

// Clone returns an independent copy.
func (m *BitMatrix) Clone() *BitMatrix {
	c := &BitMatrix{rows: m.rows, cols: m.cols, data: make([]*bitset.BitSet, m.rows)}
	for i, r := range m.data {
		c.data[i] = r.Clone()
	}

	return c
}

// Equal reports whether m and o have the same shape and entries.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i].Test(uint(j)) != o.data[i].Test(uint(j)) {
				return false
			}
		}
	}

	return true
}

// String renders the matrix one row per line, '0'/'1' per entry.
func (m *BitMatrix) String() string {
	var sb strings.Builder
	for i, r := range m.data {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if r.Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}
