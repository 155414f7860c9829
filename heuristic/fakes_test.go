package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/gf2"
)

// fakeBlock is a scripted block-code collaborator.
type fakeBlock struct {
	k, n       int
	spanErr    error
	minDist    int
	minErr     error
	trellis    code.Trellis
	trellisErr error
}

func (b *fakeBlock) K() int { return b.k }
func (b *fakeBlock) N() int { return b.n }
func (b *fakeBlock) Generator() *gf2.BitMatrix {
	m, err := gf2.NewBitMatrix(b.k, b.n)
	if err != nil {
		return nil
	}
	return m
}
func (b *fakeBlock) GeneratorSpanForm() (*gf2.BitMatrix, error) {
	if b.spanErr != nil {
		return nil, b.spanErr
	}
	return b.Generator(), nil
}
func (b *fakeBlock) MinDist() (int, error) { return b.minDist, b.minErr }
func (b *fakeBlock) Trellis() (code.Trellis, error) { return b.trellis, b.trellisErr }

// levels is a trellis given by its per-level state counts.
type levels []int

func (l levels) Depth() int { return len(l) }
func (l levels) States(level int) int { return l[level] }

// fakeConv is a convolutional code whose generator blocks are derived from
// a real polynomial matrix; distances are scripted.
type fakeConv struct {
	delay     int
	gen       *gf2.PolyMatrix
	parity    *gf2.PolyMatrix
	parityErr error
	freeDist  int
	freeErr   error
	ztDist    int
	ztErr     error

	ztCycles int // last cycles passed to ZeroTail
}

func (c *fakeConv) K() int { return c.gen.Rows() }
func (c *fakeConv) N() int { return c.gen.Cols() }
func (c *fakeConv) Delay() int { return c.delay }
func (c *fakeConv) Generator() *gf2.PolyMatrix { return c.gen }
func (c *fakeConv) GenBlocks() []*gf2.BitMatrix { return c.gen.Blocks(c.delay) }
func (c *fakeConv) ParityCheck() (*gf2.PolyMatrix, error) {
	if c.parityErr != nil {
		return nil, c.parityErr
	}
	return c.parity, nil
}
func (c *fakeConv) FreeDist() (int, error) { return c.freeDist, c.freeErr }
func (c *fakeConv) ZeroTail(cycles int) (code.ZeroTail, error) {
	c.ztCycles = cycles
	if c.ztErr != nil {
		return nil, c.ztErr
	}
	return fakeZT{k: c.K(), n: c.N(), d: c.ztDist}, nil
}

type fakeZT struct{ k, n, d int }

func (z fakeZT) K() int { return z.k }
func (z fakeZT) N() int { return z.n }
func (z fakeZT) MinDist() (int, error) { return z.d, nil }

type fakeTB struct {
	parent code.Conv
	cycles int
}

func (t fakeTB) K() int {
	if t.parent == nil {
		return 0
	}
	return t.parent.K() * t.cycles
}
func (t fakeTB) N() int {
	if t.parent == nil {
		return 0
	}
	return t.parent.N() * t.cycles
}
func (t fakeTB) Parent() code.Conv { return t.parent }
func (t fakeTB) Cycles() int { return t.cycles }

// polyMatrix parses rows of coefficient strings.
func polyMatrix(t testing.TB, rows ...[]string) *gf2.PolyMatrix {
	t.Helper()
	m, err := gf2.ParsePolyMatrix(rows...)
	require.NoError(t, err)

	return m
}

// conv75 is the rate-1/2 code G = [1+D+D², 1+D²] with free distance 5 and
// parity check H = [1+D², 1+D+D²].
func conv75(t testing.TB) *fakeConv {
	t.Helper()

	return &fakeConv{
		delay:    2,
		gen:      polyMatrix(t, []string{"111", "101"}),
		parity:   polyMatrix(t, []string{"101", "111"}),
		freeDist: 5,
	}
}

// conv1517 is G = [1+D+D³, 1+D+D²+D³] with free distance 6.
func conv1517(t testing.TB) *fakeConv {
	t.Helper()

	return &fakeConv{
		delay:    3,
		gen:      polyMatrix(t, []string{"1101", "1111"}),
		freeDist: 6,
	}
}
