// SPDX-License-Identifier: MIT

package heuristic

import (
	"fmt"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/lindep"
)

// NameLinearDependence is the name of LinearDependence.
const NameLinearDependence = "linear_dependence"

// LinearDependence rejects convolutional codes whose parity-check columns
// admit a zero combination lighter than freeDist. Such a combination is a
// codeword supported on the first m positions, so the code cannot reach
// freeDist.
//
// Prefixes h₀…h_{m-1} are checked for m = 2 … n against the shared
// Database, which remembers every prefix across candidates. Coefficient
// polynomials are limited to degree Delay().
type LinearDependence struct {
	base
	freeDist int
	db       *lindep.Database
}

// NewLinearDependence returns a LinearDependence rule backed by db. Passing
// the same db to several rules (or several goroutines) shares the cache.
func NewLinearDependence(freeDist int, db *lindep.Database, opts ...Option) *LinearDependence {
	return &LinearDependence{base: newBase(NameLinearDependence, opts), freeDist: freeDist, db: db}
}

// Evaluate implements Heuristic.
func (h *LinearDependence) Evaluate(c code.Code) Verdict {
	cv, ok := c.Conv()
	if !ok {
		return NotApplicable
	}
	if h.db == nil {
		return h.fail(c, "database", fmt.Errorf("nil linear-dependence database"))
	}
	hm, err := cv.ParityCheck()
	if err != nil {
		return h.fail(c, "parity_check", err)
	}
	if hm.Rows() == 0 {
		return h.fail(c, "parity_check", fmt.Errorf("parity-check matrix has no rows"))
	}

	cols := make([]lindep.Column, hm.Cols())
	for j := range cols {
		if cols[j], err = hm.Column(j); err != nil {
			return h.fail(c, "parity_check", err)
		}
	}
	for m := 2; m <= len(cols); m++ {
		r, err := h.db.MinZeroCombination(cols[:m], cv.Delay(), h.freeDist-1)
		if err != nil {
			return h.fail(c, "min_zero_combination", err)
		}
		if r.Found() && r.Weight < h.freeDist {
			return Reject
		}
	}

	return Accept
}
