// SPDX-License-Identifier: MIT
// Package: codenum/codeenum
//
// hamming_ball.go — all non-empty index subsets of size ≤ k.
//
// Radius r runs 1..k; for each r a fresh combin.Combination(n, r) is drained
// before moving on. The zero-weight centre (r = 0) is never emitted.
// Total count: Σ_{r=1..k} C(n, r).

package codeenum

import (
	"iter"

	"github.com/katalvlaran/codenum/combin"
)

const (
	methodNewHammingBall = "NewHammingBall"
	methodHammingBallNxt = "HammingBall.Next"
)

// HammingBall enumerates the punctured Hamming ball of radius k around a
// point of length n, as sets of flipped positions.
type HammingBall struct {
	n, k   int
	radius int // radius of the active combination, 0 before the first Next
	inner  *combin.Combination
}

// NewHammingBall requires n ≥ k ≥ 0. k = 0 yields an empty enumeration.
func NewHammingBall(n, k int) (*HammingBall, error) {
	if k < 0 || n < k {
		return nil, constructionErrorf(methodNewHammingBall, "need n >= k >= 0, got n=%d k=%d", n, k)
	}

	return &HammingBall{n: n, k: k}, nil
}

// HasNext reports whether another subset remains.
func (h *HammingBall) HasNext() bool {
	if h.inner != nil && h.inner.HasNext() {
		return true
	}

	// Every C(n, r) with 1 ≤ r ≤ k ≤ n is non-empty, so any radius left means
	// at least one more subset.
	return h.radius < h.k
}

// Next returns the next subset of flipped positions.
func (h *HammingBall) Next() ([]int, error) {
	if !h.HasNext() {
		return nil, exhaustedError(methodHammingBallNxt)
	}
	if h.inner == nil || !h.inner.HasNext() {
		h.radius++
		c, err := combin.NewCombination(h.n, h.radius)
		if err != nil {
			return nil, err
		}
		h.inner = c
	}

	return h.inner.Next()
}

// Radius returns the size of the most recently emitted subset.
func (h *HammingBall) Radius() int { return h.radius }

// All adapts the enumerator to a range-over-func sequence.
func (h *HammingBall) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for h.HasNext() {
			v, err := h.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
