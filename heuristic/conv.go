// SPDX-License-Identifier: MIT
// Package: codenum/heuristic
//
// conv.go — rules for convolutional codes.
//
// All rules read the generator through GenBlocks: G₀ … G_m with m = Delay().
// A block list shorter than m+1 is a collaborator failure.

package heuristic

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/gf2"
)

// Heuristic names, as reported by Name and accepted by Config.
const (
	NameNonDegenerateBlocks = "non_degenerate_blocks"
	NameRowWeight           = "row_weight"
	NameZeroTailDistance    = "zero_tail_distance"
	NameFreeDistance        = "free_distance"
	NameGriesmer            = "griesmer"
)

var errShortBlocks = errors.New("generator has fewer than delay+1 blocks")

// genBlocks returns G₀ … G_delay or an error when the collaborator returned
// too few blocks.
func genBlocks(cv code.Conv) ([]*gf2.BitMatrix, error) {
	blocks := cv.GenBlocks()
	if cv.Delay() < 0 || len(blocks) < cv.Delay()+1 {
		return nil, fmt.Errorf("delay=%d blocks=%d: %w", cv.Delay(), len(blocks), errShortBlocks)
	}

	return blocks, nil
}

// NonDegenerateBlocks accepts codes whose first block G₀ and last block
// G_delay are both non-zero. A zero G₀ is a delayed copy of a smaller code;
// a zero G_delay means the declared delay is not the actual one.
type NonDegenerateBlocks struct {
	base
}

// NewNonDegenerateBlocks returns a NonDegenerateBlocks rule.
func NewNonDegenerateBlocks(opts ...Option) *NonDegenerateBlocks {
	return &NonDegenerateBlocks{base: newBase(NameNonDegenerateBlocks, opts)}
}

// Evaluate implements Heuristic.
func (h *NonDegenerateBlocks) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	blocks, err := genBlocks(cv)
	if err != nil {
		return h.fail(c, "gen_blocks", err)
	}

	return verdict(!blocks[0].IsZero() && !blocks[cv.Delay()].IsZero())
}

// RowWeight accepts codes in which every row of the flattened generator
// [G₀ G₁ … G_delay] has weight ≥ freeDist. A single input bit produces that
// row as a codeword, so a lighter row bounds the free distance from above.
type RowWeight struct {
	base
	freeDist int
}

// NewRowWeight returns a RowWeight rule.
func NewRowWeight(freeDist int, opts ...Option) *RowWeight {
	return &RowWeight{base: newBase(NameRowWeight, opts), freeDist: freeDist}
}

// Evaluate implements Heuristic.
func (h *RowWeight) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	blocks, err := genBlocks(cv)
	if err != nil {
		return h.fail(c, "gen_blocks", err)
	}
	k := cv.K()
	for r := 0; r < k; r++ {
		w := 0
		for _, b := range blocks[:cv.Delay()+1] {
			if b.Rows() != k {
				return h.fail(c, "gen_blocks", fmt.Errorf("block has %d rows, want %d", b.Rows(), k))
			}
			bw, err := b.RowWeight(r)
			if err != nil {
				return h.fail(c, "gen_blocks", err)
			}
			w += bw
		}
		if w < h.freeDist {
			return Reject
		}
	}

	return Accept
}

// ZeroTailDistance accepts codes whose zero-tail termination over
// ⌈rowsCount/k⌉ information blocks has minimum distance ≥ freeDist.
type ZeroTailDistance struct {
	base
	freeDist  int
	rowsCount int
}

// NewZeroTailDistance returns a ZeroTailDistance rule. rowsCount is the
// number of information bits the termination must cover.
func NewZeroTailDistance(freeDist, rowsCount int, opts ...Option) *ZeroTailDistance {
	return &ZeroTailDistance{base: newBase(NameZeroTailDistance, opts), freeDist: freeDist, rowsCount: rowsCount}
}

// Evaluate implements Heuristic.
func (h *ZeroTailDistance) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	k := cv.K()
	if k <= 0 {
		return h.fail(c, "k", fmt.Errorf("k=%d", k))
	}
	cycles := (h.rowsCount + k - 1) / k
	if cycles < 1 {
		cycles = 1
	}
	zt, err := cv.ZeroTail(cycles)
	if err != nil {
		return h.fail(c, "zero_tail", err)
	}
	d, err := zt.MinDist()
	if err != nil {
		return h.fail(c, "zero_tail_min_dist", err)
	}

	return verdict(d >= h.freeDist)
}

// FreeDistance accepts codes whose exact free distance reaches the target.
type FreeDistance struct {
	base
	freeDist int
}

// NewFreeDistance returns a FreeDistance rule.
func NewFreeDistance(freeDist int, opts ...Option) *FreeDistance {
	return &FreeDistance{base: newBase(NameFreeDistance, opts), freeDist: freeDist}
}

// Evaluate implements Heuristic.
func (h *FreeDistance) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	d, err := cv.FreeDist()
	if err != nil {
		return h.fail(c, "free_dist", err)
	}

	return verdict(d >= h.freeDist)
}

// Griesmer applies a Griesmer-type bound to windows of j = 1 … ⌈log2 d⌉-1
// blocks past the delay:
//
//	Σ_{i=0}^{j-1} ⌈d / 2^i⌉  ≤  (delay + j)·n − n0 − n1
//
// where n0 and n1 count the all-zero columns of G₀ and G_delay. This is an
// approximation used for pruning, not a proven necessary condition.
type Griesmer struct {
	base
	freeDist int
}

// NewGriesmer returns a Griesmer rule.
func NewGriesmer(freeDist int, opts ...Option) *Griesmer {
	return &Griesmer{base: newBase(NameGriesmer, opts), freeDist: freeDist}
}

// Evaluate implements Heuristic.
func (h *Griesmer) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	blocks, err := genBlocks(cv)
	if err != nil {
		return h.fail(c, "gen_blocks", err)
	}
	d := h.freeDist
	if d < 2 {
		return Accept
	}

	n, delay := cv.N(), cv.Delay()
	n0 := blocks[0].ZeroColumns()
	n1 := blocks[delay].ZeroColumns()
	windows := bits.Len(uint(d - 1)) // ⌈log2 d⌉

	for j := 1; j < windows; j++ {
		sum := 0
		for i := 0; i < j; i++ {
			sum += (d + (1 << i) - 1) >> i
		}
		if sum > (delay+j)*n-n0-n1 {
			return Reject
		}
	}

	return Accept
}
