// SPDX-License-Identifier: MIT
// Package: codenum/gf2
//
// polymatrix.go — matrices of GF(2) polynomials.

package gf2

// PolyMatrix is an r×c matrix of polynomials. Entries are never nil.
type PolyMatrix struct {
	rows, cols int
	data       [][]*Poly
}

// NewPolyMatrix returns an all-zero rows×cols polynomial matrix.
// Negative sizes return ErrBadShape.
func NewPolyMatrix(rows, cols int) (*PolyMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewPolyMatrix", rows, cols)
	}

	return newPolyMatrix(rows, cols), nil
}

func newPolyMatrix(rows, cols int) *PolyMatrix {
	m := &PolyMatrix{rows: rows, cols: cols, data: make([][]*Poly, rows)}
	for i := range m.data {
		m.data[i] = make([]*Poly, cols)
		for j := range m.data[i] {
			m.data[i][j] = NewPoly()
		}
	}

	return m
}

// ParsePolyMatrix builds a matrix from rows of coefficient strings
// (see ParsePoly). Rows must have equal length.
func ParsePolyMatrix(rows ...[]string) (*PolyMatrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := newPolyMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for j, s := range row {
			p, err := ParsePoly(s)
			if err != nil {
				return nil, err
			}
			m.data[i][j] = p
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *PolyMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *PolyMatrix) Cols() int { return m.cols }

func (m *PolyMatrix) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns entry (i,j). The polynomial is shared, not copied.
func (m *PolyMatrix) At(i, j int) (*Poly, error) {
	if !m.inRange(i, j) {
		return nil, indexErrorf("PolyMatrix", ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i][j], nil
}

// Set stores p at (i,j); nil stores the zero polynomial.
func (m *PolyMatrix) Set(i, j int, p *Poly) error {
	if !m.inRange(i, j) {
		return indexErrorf("PolyMatrix", ctxSet, i, j, ErrOutOfRange)
	}
	if p == nil {
		p = NewPoly()
	}
	m.data[i][j] = p

	return nil
}

// Column returns the polynomials of column j, top to bottom.
func (m *PolyMatrix) Column(j int) ([]*Poly, error) {
	if j < 0 || j >= m.cols {
		return nil, indexErrorf("PolyMatrix", ctxColumn, 0, j, ErrOutOfRange)
	}
	col := make([]*Poly, m.rows)
	for i := range m.data {
		col[i] = m.data[i][j]
	}

	return col, nil
}

// Degree returns the largest entry degree, or -1 for the zero matrix.
func (m *PolyMatrix) Degree() int {
	deg := -1
	for _, row := range m.data {
		for _, p := range row {
			if d := p.Degree(); d > deg {
				deg = d
			}
		}
	}

	return deg
}

// Blocks splits m into delay+1 coefficient matrices G_t, where G_t(i,j) is
// coefficient t of entry (i,j). Coefficients above delay are dropped.
func (m *PolyMatrix) Blocks(delay int) []*BitMatrix {
	if delay < 0 {
		return nil
	}
	blocks := make([]*BitMatrix, delay+1)
	for t := range blocks {
		blocks[t] = newBitMatrix(m.rows, m.cols)
	}
	for i, row := range m.data {
		for j, p := range row {
			for t := 0; t <= delay; t++ {
				if p.Coeff(t) {
					blocks[t].data[i].Set(uint(j))
				}
			}
		}
	}

	return blocks
}
