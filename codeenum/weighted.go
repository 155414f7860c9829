// SPDX-License-Identifier: MIT
// Package: codenum/codeenum
//
// weighted.go — tuples of polynomials with a fixed total Hamming weight.
//
// The total weight is first split across sumCount = min(weight, length)
// polynomials by a combin.SumDecomposition over (weight, sumCount, degree+1, 0).
// Each polynomial i then chooses which of its degree+1 coefficient positions
// are set through combin.Combination(degree+1, summand[i]).
//
// Advance is a mixed-radix odometer:
//  1. try the rightmost polynomial's combination;
//  2. when it is exhausted, move left to the first polynomial that can still
//     advance and reset every polynomial to its right from its summand;
//  3. when none can advance, draw the next summand vector and rebuild all
//     polynomial enumerators.

package codeenum

import (
	"iter"

	"github.com/katalvlaran/codenum/combin"
	"github.com/katalvlaran/codenum/gf2"
)

const (
	methodNewWeightedCodeWords = "NewWeightedCodeWords"
	methodWeightedCodeWordsNxt = "WeightedCodeWords.Next"
)

// WeightedCodeWords enumerates tuples of sumCount polynomials of degree
// ≤ degree whose weights add up to weight.
type WeightedCodeWords struct {
	weight, degree, length int
	sumCount               int

	split    *combin.SumDecomposition
	summands []int
	polys    []*combin.Combination
	cur      [][]int // coefficient positions per polynomial
	pending  bool
}

// NewWeightedCodeWords requires weight ≥ 1, degree ≥ 0, length ≥ 1 and
// weight ≤ min(weight, length)·(degree+1).
func NewWeightedCodeWords(weight, degree, length int) (*WeightedCodeWords, error) {
	if weight < 1 || degree < 0 || length < 1 {
		return nil, constructionErrorf(methodNewWeightedCodeWords,
			"need weight >= 1, degree >= 0, length >= 1, got %d/%d/%d", weight, degree, length)
	}
	sumCount := min(weight, length)
	split, err := combin.NewSumDecomposition(weight, sumCount, degree+1, 0)
	if err != nil {
		return nil, err
	}

	w := &WeightedCodeWords{
		weight:   weight,
		degree:   degree,
		length:   length,
		sumCount: sumCount,
		split:    split,
		polys:    make([]*combin.Combination, sumCount),
		cur:      make([][]int, sumCount),
	}
	w.pending = w.nextSplit()

	return w, nil
}

// SumCount returns the number of polynomials per emitted tuple.
func (w *WeightedCodeWords) SumCount() int { return w.sumCount }

// HasNext reports whether another tuple remains.
func (w *WeightedCodeWords) HasNext() bool { return w.pending }

// Next returns the next tuple of polynomials.
func (w *WeightedCodeWords) Next() ([]*gf2.Poly, error) {
	if !w.pending {
		return nil, exhaustedError(methodWeightedCodeWordsNxt)
	}
	out := make([]*gf2.Poly, w.sumCount)
	for i, pos := range w.cur {
		out[i] = gf2.PolyFromCoeffs(pos...)
	}
	w.pending = w.advance()

	return out, nil
}

// All adapts the enumerator to a range-over-func sequence.
func (w *WeightedCodeWords) All() iter.Seq[[]*gf2.Poly] {
	return func(yield func([]*gf2.Poly) bool) {
		for w.HasNext() {
			v, err := w.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// advance moves the odometer one step. Returns false when the space is
// exhausted.
func (w *WeightedCodeWords) advance() bool {
	for i := w.sumCount - 1; i >= 0; i-- {
		if !w.polys[i].HasNext() {
			continue
		}
		pos, err := w.polys[i].Next()
		if err != nil {
			return false
		}
		w.cur[i] = pos
		for j := i + 1; j < w.sumCount; j++ {
			if !w.resetPoly(j) {
				return false
			}
		}

		return true
	}

	return w.nextSplit()
}

// nextSplit draws the next summand vector and rebuilds every polynomial.
func (w *WeightedCodeWords) nextSplit() bool {
	if !w.split.HasNext() {
		return false
	}
	s, err := w.split.Next()
	if err != nil {
		return false
	}
	w.summands = s
	for i := range w.polys {
		if !w.resetPoly(i) {
			return false
		}
	}

	return true
}

// resetPoly restarts polynomial i from its fixed summand and loads its first
// coefficient set.
func (w *WeightedCodeWords) resetPoly(i int) bool {
	c, err := combin.NewCombination(w.degree+1, w.summands[i])
	if err != nil {
		return false
	}
	pos, err := c.Next()
	if err != nil {
		return false
	}
	w.polys[i], w.cur[i] = c, pos

	return true
}
