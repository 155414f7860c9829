// SPDX-License-Identifier: MIT

// Package code describes the candidate codes that heuristics judge.
//
// Code is an explicit tagged union over four variants:
//
//	KindBlock       — Block: a block code with a binary generator matrix.
//	KindConv        — Conv: a convolutional code with a polynomial generator.
//	KindTailBiting  — TailBiting: a tail-biting termination of a Conv parent.
//	KindZeroTail    — ZeroTail: a zero-tail termination of a Conv parent.
//
// The variant interfaces are collaborator contracts: algebraic construction,
// span forms, trellises and exact distance computations live outside this
// module and are plugged in by implementing them. Heuristics inspect
// Code.Kind and ask for the variant they understand, so no type assertion on
// an opaque handle is ever needed.
package code
