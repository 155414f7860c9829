// SPDX-License-Identifier: MIT

// Package heuristic prunes candidate codes before expensive exact
// computations are attempted.
//
// A Heuristic evaluates a code.Code and answers with a Verdict:
//
//	Accept         — the candidate may still meet the targets.
//	Reject         — the candidate provably (or, for Griesmer, heuristically)
//	                 misses a target, or a collaborator failed.
//	NotApplicable  — the heuristic does not understand this code variant.
//
// Check collapses a Verdict to the boolean acceptance used by search
// drivers: only Accept is true. Collaborator errors and panics never escape
// a check; they are logged at debug level and turned into Reject, so a long
// search survives individual bad candidates.
//
// Combined is a priority-ordered conjunction. Cheap rules should get small
// priorities so that they run first and short-circuit the expensive ones:
//
//	db := lindep.NewDatabase()
//	h := heuristic.NewCombined()
//	_ = h.Add(0, heuristic.NewNonDegenerateBlocks())
//	_ = h.Add(1, heuristic.NewGriesmer(6))
//	_ = h.Add(2, heuristic.NewRowWeight(6))
//	_ = h.Add(5, heuristic.NewLinearDependence(6, db))
//	_ = h.Add(9, heuristic.NewFreeDistance(6))
//	if h.Check(code.FromConv(candidate)) { ... }
//
// The same pipeline can be declared in YAML and built with Config.Build.
//
// Heuristics are stateless apart from the shared *lindep.Database, which is
// safe for concurrent use; a Combined may be shared across goroutines once
// all Add calls are done.
package heuristic
