// SPDX-License-Identifier: MIT

package codeenum

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/codenum/combin"
)

// ErrOverflowGuard indicates that a requested bit-width does not fit the
// native int used to encode column or row patterns.
var ErrOverflowGuard = errors.New("codeenum: bit-width exceeds native integer capacity")

// maxPatternBits is the largest width w for which 1<<w is a positive int.
const maxPatternBits = strconv.IntSize - 2

// constructionErrorf wraps combin.ErrConstruction with method context so that
// callers match one sentinel for every enumerator.
func constructionErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), combin.ErrConstruction)
}

// exhaustedError wraps combin.ErrExhausted with method context.
func exhaustedError(method string) error {
	return fmt.Errorf("%s: %w", method, combin.ErrExhausted)
}

// checkPatternBits guards 1<<bits against overflow.
func checkPatternBits(method string, bits int) error {
	if bits > maxPatternBits {
		return fmt.Errorf("%s: width %d > %d: %w", method, bits, maxPatternBits, ErrOverflowGuard)
	}

	return nil
}
