// SPDX-License-Identifier: MIT

package code

import (
	"fmt"

	"github.com/katalvlaran/codenum/gf2"
)

// Kind tags the active variant of a Code.
type Kind uint8

const (
	// KindInvalid is the zero Code.
	KindInvalid Kind = iota
	KindBlock
	KindConv
	KindTailBiting
	KindZeroTail
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindConv:
		return "conv"
	case KindTailBiting:
		return "tail-biting"
	case KindZeroTail:
		return "zero-tail"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Block is a binary block code.
type Block interface {
	K() int
	N() int
	// Generator returns the k×n generator matrix.
	Generator() *gf2.BitMatrix
	// GeneratorSpanForm fails when the generator rows are linearly dependent.
	GeneratorSpanForm() (*gf2.BitMatrix, error)
	// MinDist computes the exact minimum distance.
	MinDist() (int, error)
	// Trellis builds the code's trellis.
	Trellis() (Trellis, error)
}

// Conv is a convolutional code G(D) = G₀ + G₁D + … + G_m D^m, m = Delay().
type Conv interface {
	K() int
	N() int
	Delay() int
	// Generator returns the k×n polynomial generator matrix.
	Generator() *gf2.PolyMatrix
	// GenBlocks returns G₀ … G_delay, each k×n.
	GenBlocks() []*gf2.BitMatrix
	// ParityCheck returns the (n-k)×n polynomial parity-check matrix.
	ParityCheck() (*gf2.PolyMatrix, error)
	// FreeDist computes the exact free distance.
	FreeDist() (int, error)
	// ZeroTail returns the zero-tail termination after `cycles` information
	// blocks.
	ZeroTail(cycles int) (ZeroTail, error)
}

// TailBiting is a tail-biting code obtained by wrapping a Conv encoder.
type TailBiting interface {
	K() int
	N() int
	Parent() Conv
	// Cycles is the number of repeated information blocks.
	Cycles() int
}

// ZeroTail is a zero-tail (terminated) code obtained from a Conv encoder.
type ZeroTail interface {
	K() int
	N() int
	MinDist() (int, error)
}

// Code is a tagged union over the supported code variants. The zero value
// has KindInvalid and holds nothing.
type Code struct {
	kind Kind
	blk  Block
	conv Conv
	tb   TailBiting
	zt   ZeroTail
}

// FromBlock wraps a block code.
func FromBlock(b Block) Code { return Code{kind: KindBlock, blk: b} }

// FromConv wraps a convolutional code.
func FromConv(c Conv) Code { return Code{kind: KindConv, conv: c} }

// FromTailBiting wraps a tail-biting code.
func FromTailBiting(t TailBiting) Code { return Code{kind: KindTailBiting, tb: t} }

// FromZeroTail wraps a zero-tail code.
func FromZeroTail(z ZeroTail) Code { return Code{kind: KindZeroTail, zt: z} }

// Kind returns the active variant tag.
func (c Code) Kind() Kind { return c.kind }

// Block returns the block variant, if active.
func (c Code) Block() (Block, bool) { return c.blk, c.kind == KindBlock && c.blk != nil }

// Conv returns the convolutional variant, if active.
func (c Code) Conv() (Conv, bool) { return c.conv, c.kind == KindConv && c.conv != nil }

// TailBiting returns the tail-biting variant, if active.
func (c Code) TailBiting() (TailBiting, bool) { return c.tb, c.kind == KindTailBiting && c.tb != nil }

// ZeroTail returns the zero-tail variant, if active.
func (c Code) ZeroTail() (ZeroTail, bool) { return c.zt, c.kind == KindZeroTail && c.zt != nil }

// Params returns (k, n) of the active variant, or (0, 0) for KindInvalid
// and for a nil variant.
func (c Code) Params() (k, n int) {
	switch {
	case c.kind == KindBlock && c.blk != nil:
		return c.blk.K(), c.blk.N()
	case c.kind == KindConv && c.conv != nil:
		return c.conv.K(), c.conv.N()
	case c.kind == KindTailBiting && c.tb != nil:
		return c.tb.K(), c.tb.N()
	case c.kind == KindZeroTail && c.zt != nil:
		return c.zt.K(), c.zt.N()
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer, e.g. "conv(2,3)".
func (c Code) String() string {
	k, n := c.Params()

	return fmt.Sprintf("%s(%d,%d)", c.kind, k, n)
}
