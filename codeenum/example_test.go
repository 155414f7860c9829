// Package codeenum_test provides runnable examples for the composite enumerators.
package codeenum_test

import (
	"fmt"

	"github.com/katalvlaran/codenum/codeenum"
)

// ExampleNewHammingBall lists the flipped-position sets within radius 2 of a
// length-3 word.
func ExampleNewHammingBall() {
	h, err := codeenum.NewHammingBall(3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for v := range h.All() {
		fmt.Println(v)
	}
	// Output:
	// [0]
	// [1]
	// [2]
	// [0 1]
	// [0 2]
	// [1 2]
}

// ExampleNewMatrix prints the column profiles of 1×3 binary matrices.
func ExampleNewMatrix() {
	m, err := codeenum.NewMatrix(1, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	for m.HasNext() {
		bm, _ := m.Next()
		fmt.Println(bm)
	}
	// Output:
	// 000
	// 111
	// 011
	// 001
}

// ExampleNewWeightedCodeWords prints weight-2 pairs of polynomials of degree ≤ 1.
func ExampleNewWeightedCodeWords() {
	w, err := codeenum.NewWeightedCodeWords(2, 1, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for ps := range w.All() {
		fmt.Println(ps[0], ps[1])
	}
	// Output:
	// 1+D 0
	// 1 1
	// 1 D
	// D 1
	// D D
	// 0 1+D
}
