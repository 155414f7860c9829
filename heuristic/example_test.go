package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/gf2"
	"github.com/katalvlaran/codenum/heuristic"
)

// exampleConv is a minimal convolutional code for the examples below.
type exampleConv struct {
	gen   *gf2.PolyMatrix
	delay int
}

func (c exampleConv) K() int { return c.gen.Rows() }
func (c exampleConv) N() int { return c.gen.Cols() }
func (c exampleConv) Delay() int { return c.delay }
func (c exampleConv) Generator() *gf2.PolyMatrix { return c.gen }
func (c exampleConv) GenBlocks() []*gf2.BitMatrix { return c.gen.Blocks(c.delay) }
func (c exampleConv) ParityCheck() (*gf2.PolyMatrix, error) { return nil, fmt.Errorf("not needed") }
func (c exampleConv) FreeDist() (int, error) { return 0, fmt.Errorf("not needed") }
func (c exampleConv) ZeroTail(int) (code.ZeroTail, error) { return nil, fmt.Errorf("not needed") }

// ExampleCombined prunes candidates with cheap structural rules first.
func ExampleCombined() {
	comb := heuristic.NewCombined()
	_ = comb.Add(0, heuristic.NewNonDegenerateBlocks())
	_ = comb.Add(1, heuristic.NewRowWeight(5))
	_ = comb.Add(2, heuristic.NewGriesmer(5))

	for _, gen := range [][]string{
		{"111", "101"}, // 1+D+D², 1+D²
		{"011", "011"}, // D+D², D+D²: G₀ is zero
		{"110", "101"}, // 1+D, 1+D²: row weight 4
	} {
		g, _ := gf2.ParsePolyMatrix(gen)
		c := code.FromConv(exampleConv{gen: g, delay: 2})
		fmt.Println(gen, comb.Check(c))
	}
	// Output:
	// [111 101] true
	// [011 011] false
	// [110 101] false
}

// ExampleNewFunc wraps an ad-hoc predicate as a Heuristic.
func ExampleNewFunc() {
	rateHalf := heuristic.NewFunc("rate_half", func(c code.Code) heuristic.Verdict {
		k, n := c.Params()
		if 2*k == n {
			return heuristic.Accept
		}
		return heuristic.Reject
	})

	g, _ := gf2.ParsePolyMatrix([]string{"111", "101"})
	fmt.Println(rateHalf.Name(), heuristic.Check(rateHalf, code.FromConv(exampleConv{gen: g, delay: 2})))
	// Output: rate_half true
}
