// SPDX-License-Identifier: MIT

// Package lindep memoises linear-dependence searches over parity-check
// polynomial columns.
//
// Given columns h₀ … h_{m-1} of a polynomial parity-check matrix, a zero
// combination is a tuple of coefficient polynomials c₀ … c_{m-1}, each of
// degree ≤ maxDelay and not all zero, with Σ h_j·c_j = 0 in every row. Its
// weight is Σ Weight(c_j), which is the weight of a codeword supported on
// the first m code positions. Any such weight below a target free distance
// proves the target unreachable.
//
// The Database maps a canonical key (column keys sorted, plus maxDelay) to
// the smallest weight found so far, together with the bound up to which
// the search was exhaustive. It only grows; entries are never evicted for
// the lifetime of a search session.
//
// A Database is safe for concurrent use: lookups take a read lock, and a
// singleflight.Group makes check-then-search atomic per key, so two
// goroutines asking for the same prefix trigger one brute-force search.
package lindep
