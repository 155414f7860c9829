// SPDX-License-Identifier: MIT
// Package: codenum/combin
//
// errors.go — sentinel errors for the combin package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match them with errors.Is.
//   • Constructors attach context with %w (see combinErrorf).
//   • Next never panics; exhaustion is reported with ErrExhausted.

package combin

import (
	"errors"
	"fmt"
)

// ErrConstruction indicates invalid enumerator parameters (e.g. n < k, or a
// decomposition that no vector can satisfy). Detected eagerly in constructors.
var ErrConstruction = errors.New("combin: invalid enumerator parameters")

// ErrExhausted indicates Next was called although HasNext reports false.
var ErrExhausted = errors.New("combin: enumerator exhausted")

// combinErrorf wraps sentinel with a "<method>: <message>" prefix.
func combinErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
