// SPDX-License-Identifier: MIT

package heuristic

import (
	"fmt"

	"github.com/katalvlaran/codenum/code"
)

// NameTailBitingWeight is the name of TailBitingWeight.
const NameTailBitingWeight = "tail_biting_weight"

// TailBitingWeight bounds the minimum distance of a tail-biting code from
// above. Wrapping one cycle folds the parent generator into the column-wise
// XOR S = G₀ + G₁ + … + G_delay; feeding the same single input bit in every
// cycle yields a codeword of weight Cycles()·wt(row of S). The rule accepts
// iff the lightest row of S times Cycles() reaches minDist.
type TailBitingWeight struct {
	base
	minDist int
}

// NewTailBitingWeight returns a TailBitingWeight rule.
func NewTailBitingWeight(minDist int, opts ...Option) *TailBitingWeight {
	return &TailBitingWeight{base: newBase(NameTailBitingWeight, opts), minDist: minDist}
}

// Evaluate implements Heuristic.
func (h *TailBitingWeight) Evaluate(c code.Code) Verdict {
	tb, ok := c.TailBiting()
	if !ok {
		return NotApplicable
	}
	parent := tb.Parent()
	if parent == nil {
		return h.fail(c, "parent", fmt.Errorf("nil parent"))
	}
	blocks, err := genBlocks(parent)
	if err != nil {
		return h.fail(c, "gen_blocks", err)
	}

	sum := blocks[0].Clone()
	for _, b := range blocks[1 : parent.Delay()+1] {
		if err := sum.Xor(b); err != nil {
			return h.fail(c, "gen_blocks", err)
		}
	}
	if sum.Rows() == 0 {
		return h.fail(c, "gen_blocks", fmt.Errorf("generator has no rows"))
	}

	return verdict(sum.MinRowWeight()*tb.Cycles() >= h.minDist)
}
