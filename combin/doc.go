// SPDX-License-Identifier: MIT

// Package combin provides the primitive enumerators every search space in
// codenum is built from.
//
// Two enumerators live here:
//
//   - Combination — k-subsets of {0,…,n-1} in lexicographic order.
//   - SumDecomposition — bounded integer partitions of a number into a fixed
//     count of ordered parts, in decreasing lexicographic order.
//
// Both are pull-based, single-goroutine generators:
//
//	c, err := combin.NewCombination(5, 2)
//	if err != nil { ... }
//	for c.HasNext() {
//		idx, _ := c.Next()
//		// idx is a fresh slice owned by the caller
//	}
//
// or, with range-over-func:
//
//	for idx := range c.All() { ... }
//
// Contract shared by all enumerators:
//   - Invalid parameters are rejected eagerly by the constructor with
//     ErrConstruction; iteration never fails mid-way.
//   - HasNext is O(1) and idempotent: polling it after exhaustion always
//     returns false and never mutates state.
//   - Next after exhaustion returns ErrExhausted.
//   - Every value returned by Next is a fresh slice; the enumerator keeps no
//     reference to it.
//   - Enumerators are not restartable; build a new one to iterate again.
//
// Enumerators are not safe for concurrent use. Independent goroutines should
// own independent enumerators.
package combin
