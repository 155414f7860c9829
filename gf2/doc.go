// SPDX-License-Identifier: MIT

// Package gf2 implements the small slice of GF(2) arithmetic the enumerators
// and heuristics of codenum need: polynomials in D, bit matrices and
// polynomial matrices.
//
// Storage is backed by github.com/willf/bitset, so coefficients and matrix
// rows are packed 64 per word.
//
//   - Poly       — polynomial a₀ + a₁D + … over GF(2); Add is XOR, Mul is
//     carry-less multiplication.
//   - BitMatrix  — r×c matrix of bits with row weights and zero-column counts.
//   - PolyMatrix — r×c matrix of Poly, split into coefficient blocks with
//     Blocks (G(D) = G₀ + G₁D + … + G_m D^m).
//
// The package is not a general algebra library: span forms, ranks and code
// construction are left to callers. Values are not safe for concurrent
// mutation; concurrent reads are fine.
package gf2
