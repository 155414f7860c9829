// Package codenum enumerates candidate error-correcting-code constructions
// and prunes them with cheap heuristics before any expensive property is
// computed.
//
// The module is organized as flat subpackages:
//
//	combin/    — k-combinations and bounded ordered sum decompositions
//	codeenum/  — Hamming balls, binary matrices up to column permutation,
//	             distinct-row matrices, fixed-weight polynomial codewords
//	gf2/       — polynomials and matrices over GF(2)
//	code/      — tagged union over block, convolutional, tail-biting and
//	             zero-tail codes, and the collaborator interfaces they expose
//	heuristic/ — pruning rules, their conjunction and YAML pipelines
//	lindep/    — shared cache of minimal zero combinations of columns
//	cmd/codenum — command-line front end
//
// Every enumerator is a pull generator with HasNext/Next and an All adapter
// for range-over-func. Heuristics never return errors: a failing
// collaborator rejects the candidate.
package codenum
