// SPDX-License-Identifier: MIT
// Package: codenum/combin
//
// sum_decomposition.go — bounded ordered partitions of a number.
//
// A SumDecomposition yields every vector v of length sumCount with
// lowerBound ≤ v[i] ≤ upperBound and Σv = number, in decreasing
// lexicographic order:
//
//   - the first vector front-loads the largest values toward index 0;
//   - the last vector is the lexicographically smallest admissible one.
//
// Successor step:
//  1. Starting from the cursor `last` (the rightmost position still above
//     lowerBound), scan leftwards past the trailing run of positions that
//     cannot be decremented, either because they sit at lowerBound or
//     because the suffix to their right is already saturated at upperBound.
//  2. Decrement the boundary element by one.
//  3. Refill the freed remainder greedily into the positions to its right,
//     up to upperBound, keeping room for lowerBound in every later slot.
//  4. Move `last` to the new rightmost position above lowerBound.
//
// Complexity: O(sumCount) per Next, O(sumCount) memory.

package combin

import "iter"

const (
	methodNewSumDecomposition = "NewSumDecomposition"
	methodSumDecompositionNxt = "SumDecomposition.Next"
)

// SumDecomposition enumerates bounded decompositions of a number into a
// fixed count of ordered summands.
type SumDecomposition struct {
	number     int
	sumCount   int
	upperBound int
	lowerBound int

	cur  []int // next vector to emit
	last int   // rightmost index with cur[last] > lowerBound, -1 if none
	done bool
}

// NewSumDecomposition validates parameters and positions the enumerator on
// its first (front-loaded) vector.
//
// Requirements: number ≥ 0, sumCount > 0, upperBound > 0,
// 0 ≤ lowerBound ≤ upperBound, and sumCount·lowerBound ≤ number ≤
// sumCount·upperBound. Violations return ErrConstruction.
func NewSumDecomposition(number, sumCount, upperBound, lowerBound int) (*SumDecomposition, error) {
	switch {
	case number < 0:
		return nil, combinErrorf(methodNewSumDecomposition, ErrConstruction, "number=%d must be >= 0", number)
	case sumCount <= 0:
		return nil, combinErrorf(methodNewSumDecomposition, ErrConstruction, "sumCount=%d must be > 0", sumCount)
	case upperBound <= 0:
		return nil, combinErrorf(methodNewSumDecomposition, ErrConstruction, "upperBound=%d must be > 0", upperBound)
	case lowerBound < 0 || lowerBound > upperBound:
		return nil, combinErrorf(methodNewSumDecomposition, ErrConstruction,
			"lowerBound=%d must lie in [0, upperBound=%d]", lowerBound, upperBound)
	}

	// The largest reachable sum is sumCount full parts; the smallest is
	// sumCount parts at lowerBound.
	if number > sumCount*upperBound || number < sumCount*lowerBound {
		return nil, combinErrorf(methodNewSumDecomposition, ErrConstruction,
			"%d cannot be split into %d parts within [%d, %d]", number, sumCount, lowerBound, upperBound)
	}

	d := &SumDecomposition{
		number:     number,
		sumCount:   sumCount,
		upperBound: upperBound,
		lowerBound: lowerBound,
		cur:        make([]int, sumCount),
	}
	d.fill(0, number)

	return d, nil
}

// NewSumDecompositionDefault is NewSumDecomposition with lowerBound 0 and
// upperBound number (clamped to 1 when number is 0).
func NewSumDecompositionDefault(number, sumCount int) (*SumDecomposition, error) {
	upper := number
	if upper < 1 {
		upper = 1
	}

	return NewSumDecomposition(number, sumCount, upper, 0)
}

// HasNext reports whether another vector is available. O(1).
func (d *SumDecomposition) HasNext() bool { return !d.done }

// Next returns the current vector as a fresh slice and advances the cursor.
func (d *SumDecomposition) Next() ([]int, error) {
	if d.done {
		return nil, combinErrorf(methodSumDecompositionNxt, ErrExhausted,
			"number=%d sumCount=%d", d.number, d.sumCount)
	}

	out := make([]int, d.sumCount)
	copy(out, d.cur)

	if !d.advance() {
		d.done = true
	}

	return out, nil
}

// All adapts the enumerator to a range-over-func sequence.
func (d *SumDecomposition) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for d.HasNext() {
			v, err := d.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// fill writes the greedy front-loaded distribution of rem into cur[from:]
// and recomputes last.
func (d *SumDecomposition) fill(from, rem int) {
	for j := from; j < d.sumCount; j++ {
		v := rem - (d.sumCount-1-j)*d.lowerBound
		if v > d.upperBound {
			v = d.upperBound
		}
		d.cur[j] = v
		rem -= v
	}

	d.last = -1
	for j := d.sumCount - 1; j >= 0; j-- {
		if d.cur[j] > d.lowerBound {
			d.last = j
			break
		}
	}
}

// advance moves cur to its successor. Returns false when cur is terminal.
func (d *SumDecomposition) advance() bool {
	// The final position can never be the boundary: nothing to its right
	// could take the freed unit.
	start := d.last
	if start > d.sumCount-2 {
		start = d.sumCount - 2
	}
	if start < 0 {
		return false
	}

	suffix := 0
	for j := start + 1; j < d.sumCount; j++ {
		suffix += d.cur[j]
	}

	for i := start; i >= 0; i-- {
		room := (d.sumCount - 1 - i) * d.upperBound
		if d.cur[i] > d.lowerBound && suffix+1 <= room {
			d.cur[i]--
			d.fill(i+1, suffix+1)

			return true
		}
		suffix += d.cur[i]
	}

	return false
}
