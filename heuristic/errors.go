// SPDX-License-Identifier: MIT

package heuristic

import "errors"

var (
	// ErrNilHeuristic is returned by Combined.Add for a nil heuristic.
	ErrNilHeuristic = errors.New("heuristic: nil heuristic")

	// ErrUnknownHeuristic is returned by Config.Build for an unknown name.
	ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

	// ErrBadConfig indicates a malformed or inconsistent pipeline config.
	ErrBadConfig = errors.New("heuristic: invalid config")
)
