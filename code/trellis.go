// SPDX-License-Identifier: MIT

package code

import "math/bits"

// Trellis is the minimal view of a code trellis a heuristic needs: the
// number of states at each depth level 0..Depth()-1.
type Trellis interface {
	Depth() int
	States(level int) int
}

// StateComplexity returns max over levels of ⌈log2 States(level)⌉.
// Levels with fewer than two states contribute 0.
func StateComplexity(t Trellis) int {
	sc := 0
	for l := 0; l < t.Depth(); l++ {
		s := t.States(l)
		if s < 2 {
			continue
		}
		if c := bits.Len(uint(s - 1)); c > sc {
			sc = c
		}
	}

	return sc
}
