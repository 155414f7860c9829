// SPDX-License-Identifier: MIT

package lindep

import "errors"

// ErrBadColumns indicates an empty column list, columns of differing height,
// nil polynomials, or a negative maxDelay.
var ErrBadColumns = errors.New("lindep: invalid parity-check columns")
