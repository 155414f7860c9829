// SPDX-License-Identifier: MIT
// Package: codenum/combin
//
// combination.go — k-subsets of {0,…,n-1} in lexicographic order.
//
// Successor step (in place, on the internal cursor):
//  1. Find the rightmost position i with c[i] < n-k+i (not yet at its maximum).
//  2. Increment c[i].
//  3. Reset c[j] = c[j-1]+1 for every j > i.
//
// The last combination is [n-k, …, n-1], which is exactly the state where
// c[0] == n-k; this gives an O(1) HasNext.
//
// Complexity:
//   - NewCombination: O(k) time and memory.
//   - Next: O(k) worst case (cursor copy), amortised O(1) for the successor.

package combin

import (
	"iter"
	"math"
	"math/bits"
)

const (
	methodNewCombination = "NewCombination"
	methodCombinationNxt = "Combination.Next"
)

// Combination enumerates all k-element strictly increasing index sequences
// drawn from [0, n), in lexicographic order.
type Combination struct {
	n, k    int
	cur     []int // cursor; nil until the first Next
	started bool
	done    bool
}

// NewCombination returns an enumerator over the k-subsets of [0, n).
// Returns ErrConstruction if k < 0 or n < k.
func NewCombination(n, k int) (*Combination, error) {
	if k < 0 || n < k {
		return nil, combinErrorf(methodNewCombination, ErrConstruction, "need n >= k >= 0, got n=%d k=%d", n, k)
	}

	return &Combination{n: n, k: k, cur: make([]int, k)}, nil
}

// N returns the size of the index domain.
func (c *Combination) N() int { return c.n }

// K returns the subset size.
func (c *Combination) K() int { return c.k }

// HasNext reports whether another combination is available. O(1).
func (c *Combination) HasNext() bool { return !c.done }

// Next returns the next combination as a fresh slice.
func (c *Combination) Next() ([]int, error) {
	if c.done {
		return nil, combinErrorf(methodCombinationNxt, ErrExhausted, "n=%d k=%d", c.n, c.k)
	}

	if !c.started {
		c.started = true
		for i := range c.cur {
			c.cur[i] = i
		}
	} else {
		c.advance()
	}

	// The cursor has reached [n-k, …, n-1] (or k == 0, which has a single
	// empty combination).
	if c.k == 0 || c.cur[0] == c.n-c.k {
		c.done = true
	}

	out := make([]int, c.k)
	copy(out, c.cur)

	return out, nil
}

// advance performs the in-place successor step. Callers guarantee that the
// cursor is not the last combination.
func (c *Combination) advance() {
	var i int
	for i = c.k - 1; i >= 0; i-- {
		if c.cur[i] < c.n-c.k+i {
			break
		}
	}
	c.cur[i]++
	for j := i + 1; j < c.k; j++ {
		c.cur[j] = c.cur[j-1] + 1
	}
}

// All adapts the enumerator to a range-over-func sequence. Iteration consumes
// the enumerator.
func (c *Combination) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for c.HasNext() {
			v, err := c.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Binomial returns C(n, k), or 0 when k < 0 or k > n.
// Every partial product is itself a binomial no larger than the result, so
// the value is exact whenever it fits in an int; larger results saturate at
// math.MaxInt.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		// r·(n-k+i) is divisible by i; cancel gcd(r, i) first so the
		// multiplication yields C(n-k+i, i) directly.
		g := gcd(r, i)
		r /= g
		f := (n - k + i) / (i / g)
		hi, lo := bits.Mul64(uint64(r), uint64(f))
		if hi != 0 || lo > math.MaxInt {
			return math.MaxInt
		}
		r = int(lo)
	}

	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
