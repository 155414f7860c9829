// SPDX-License-Identifier: MIT
// Package: codenum/heuristic
//
// block.go — rules for block codes.

package heuristic

import "github.com/katalvlaran/codenum/code"

// Heuristic names, as reported by Name and accepted by Config.
const (
	NameMinDistance     = "min_distance"
	NameStateComplexity = "state_complexity"
)

// MinDistance accepts block codes whose exact minimum distance reaches the
// target. With checkIndependence, a generator whose rows are dependent (span
// form fails) is rejected before the distance is computed.
type MinDistance struct {
	base
	target            int
	checkIndependence bool
}

// NewMinDistance returns a MinDistance rule.
func NewMinDistance(target int, checkIndependence bool, opts ...Option) *MinDistance {
	return &MinDistance{base: newBase(NameMinDistance, opts), target: target, checkIndependence: checkIndependence}
}

// Evaluate implements Heuristic.
func (h *MinDistance) Evaluate(c code.Code) Verdict {
	b, ok := c.Block()
	if !ok {
		return NotApplicable
	}
	if h.checkIndependence {
		if _, err := b.GeneratorSpanForm(); err != nil {
			return h.fail(c, "generator_span_form", err)
		}
	}
	d, err := b.MinDist()
	if err != nil {
		return h.fail(c, "min_dist", err)
	}

	return verdict(d >= h.target)
}

// StateComplexity accepts block codes whose trellis state complexity does
// not exceed the target.
type StateComplexity struct {
	base
	target            int
	checkIndependence bool
}

// NewStateComplexity returns a StateComplexity rule.
func NewStateComplexity(target int, checkIndependence bool, opts ...Option) *StateComplexity {
	return &StateComplexity{base: newBase(NameStateComplexity, opts), target: target, checkIndependence: checkIndependence}
}

// Evaluate implements Heuristic.
func (h *StateComplexity) Evaluate(c code.Code) Verdict {
	b, ok := c.Block()
	if !ok {
		return NotApplicable
	}
	if h.checkIndependence {
		if _, err := b.GeneratorSpanForm(); err != nil {
			return h.fail(c, "generator_span_form", err)
		}
	}
	t, err := b.Trellis()
	if err != nil {
		return h.fail(c, "trellis", err)
	}

	return verdict(code.StateComplexity(t) <= h.target)
}
