// SPDX-License-Identifier: MIT

// Package codenum/codeenum composes the primitive enumerators of combin into
// the combinatorial objects a code search walks over:
//
//   - HammingBall        — every non-empty index subset of size ≤ k; the
//     local-search neighbourhood of a point, minus the point itself.
//   - Matrix             — k×n binary matrices up to column reordering,
//     described by a ColumnProfile (distinct column patterns and their
//     multiplicities).
//   - Rows               — sets of distinct k-bit rows drawn from one
//     combination over [0, 2^len).
//   - WeightedCodeWords  — tuples of GF(2) polynomials with a fixed total
//     Hamming weight and bounded degree.
//
// Enumerators here share the combin contract: construction errors are eager
// and wrap combin.ErrConstruction, HasNext is idempotent, Next after
// exhaustion wraps combin.ErrExhausted, and every returned value is fresh.
// Enumerators that encode values as machine integers refuse bit-widths the
// int type cannot hold and return ErrOverflowGuard.
package codeenum
