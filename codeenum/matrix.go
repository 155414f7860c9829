// SPDX-License-Identifier: MIT
// Package: codenum/codeenum
//
// matrix.go — k×n binary matrices up to column reordering.
//
// Two matrices that differ only by a permutation of columns describe the same
// multiset of columns. The enumerator therefore walks multisets:
//
//  1. d, the number of distinct column patterns, runs 1..min(2^k, n);
//  2. the d patterns themselves come from combin.Combination(2^k, d), so they
//     are strictly increasing k-bit integers;
//  3. their positive multiplicities come from combin.Combination(n-1, d-1),
//     read as "stars and bars": the chosen indices are the cut points among
//     the n-1 gaps between n columns.
//
// Step 3 is the fastest-moving digit, then step 2, then step 1.
// The total number of profiles is C(2^k + n - 1, n).
//
// Materialisation lays out columns contiguously by pattern; bit r of a
// pattern is row r.

package codeenum

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/codenum/combin"
	"github.com/katalvlaran/codenum/gf2"
)

const (
	methodNewMatrix   = "NewMatrix"
	methodMatrixNxt   = "Matrix.Next"
	methodMaterialize = "ColumnProfile.Materialize"
)

// ColumnProfile is the canonical description of a binary matrix up to
// column reordering.
type ColumnProfile struct {
	// Rows is the number of matrix rows (bits per pattern).
	Rows int
	// Patterns are the distinct column values, strictly increasing.
	Patterns []int
	// Counts[i] > 0 is the multiplicity of Patterns[i]; Σ Counts = columns.
	Counts []int
}

// Columns returns the total number of columns described by the profile.
func (p ColumnProfile) Columns() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}

	return n
}

// Materialize builds the matrix, columns grouped by pattern in profile order.
// A profile that does not describe a matrix (mismatched lengths, a pattern
// outside [0, 2^Rows), a non-positive count) returns gf2.ErrBadShape.
func (p ColumnProfile) Materialize() (*gf2.BitMatrix, error) {
	if len(p.Patterns) != len(p.Counts) || p.Rows < 0 || p.Rows > maxPatternBits {
		return nil, fmt.Errorf("%s: rows=%d patterns=%d counts=%d: %w",
			methodMaterialize, p.Rows, len(p.Patterns), len(p.Counts), gf2.ErrBadShape)
	}
	for i, pat := range p.Patterns {
		if pat < 0 || pat >= 1<<p.Rows || p.Counts[i] < 1 {
			return nil, fmt.Errorf("%s: pattern %d count %d: %w", methodMaterialize, pat, p.Counts[i], gf2.ErrBadShape)
		}
	}
	cols := make([]uint64, 0, p.Columns())
	for i, pat := range p.Patterns {
		for c := 0; c < p.Counts[i]; c++ {
			cols = append(cols, uint64(pat))
		}
	}

	return gf2.BitMatrixFromColumns(p.Rows, cols)
}

// Matrix enumerates k×n binary matrices up to column permutation.
type Matrix struct {
	rows, cols  int
	maxDistinct int

	distinct int
	patterns *combin.Combination // over [0, 2^rows), size distinct
	counts   *combin.Combination // over [0, cols-1), size distinct-1
	current  []int               // patterns of the active multiset

	pending *ColumnProfile
}

// NewMatrix returns an enumerator over rows×cols binary matrices.
// rows and cols must be ≥ 1. rows wider than the native int (minus sign and
// one bit of headroom) return ErrOverflowGuard.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, constructionErrorf(methodNewMatrix, "need rows >= 1 and cols >= 1, got %dx%d", rows, cols)
	}
	if err := checkPatternBits(methodNewMatrix, rows); err != nil {
		return nil, err
	}

	maxDistinct := cols
	if domain := 1 << rows; domain < maxDistinct {
		maxDistinct = domain
	}
	m := &Matrix{rows: rows, cols: cols, maxDistinct: maxDistinct}
	m.advance()

	return m, nil
}

// HasNext reports whether another profile remains.
func (m *Matrix) HasNext() bool { return m.pending != nil }

// NextProfile returns the next canonical column profile.
func (m *Matrix) NextProfile() (ColumnProfile, error) {
	if m.pending == nil {
		return ColumnProfile{}, exhaustedError(methodMatrixNxt)
	}
	p := *m.pending
	m.advance()

	return p, nil
}

// Next returns the next matrix, materialised from its profile.
func (m *Matrix) Next() (*gf2.BitMatrix, error) {
	p, err := m.NextProfile()
	if err != nil {
		return nil, err
	}

	return p.Materialize()
}

// All adapts the enumerator to a range-over-func sequence of profiles.
func (m *Matrix) All() iter.Seq[ColumnProfile] {
	return func(yield func(ColumnProfile) bool) {
		for m.HasNext() {
			p, err := m.NextProfile()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}

// advance computes the profile that follows the current one, or clears
// pending when the space is exhausted.
func (m *Matrix) advance() {
	m.pending = nil
	for {
		if m.counts != nil && m.counts.HasNext() {
			cuts, err := m.counts.Next()
			if err != nil {
				return
			}
			m.pending = &ColumnProfile{
				Rows:     m.rows,
				Patterns: append([]int(nil), m.current...),
				Counts:   starsAndBars(cuts, m.cols),
			}

			return
		}
		if m.patterns != nil && m.patterns.HasNext() {
			cur, err := m.patterns.Next()
			if err != nil {
				return
			}
			m.current = cur
			if m.counts, err = combin.NewCombination(m.cols-1, m.distinct-1); err != nil {
				return
			}

			continue
		}
		if m.distinct >= m.maxDistinct {
			return
		}
		m.distinct++
		var err error
		if m.patterns, err = combin.NewCombination(1<<m.rows, m.distinct); err != nil {
			return
		}
		m.counts = nil
	}
}

// starsAndBars converts d-1 increasing cut points in [0, total-1) into d
// positive parts summing to total.
func starsAndBars(cuts []int, total int) []int {
	parts := make([]int, len(cuts)+1)
	prev := -1
	for i, c := range cuts {
		parts[i] = c - prev
		prev = c
	}
	parts[len(cuts)] = total - 1 - prev

	return parts
}
