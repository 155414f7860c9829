package lindep_test

import (
	"fmt"

	"github.com/katalvlaran/codenum/gf2"
	"github.com/katalvlaran/codenum/lindep"
)

func ExampleDatabase_MinZeroCombination() {
	h0, _ := gf2.ParsePoly("101") // 1+D²
	h1, _ := gf2.ParsePoly("111") // 1+D+D²
	cols := []lindep.Column{{h0}, {h1}}

	db := lindep.NewDatabase()
	r, _ := db.MinZeroCombination(cols, 2, 4)
	fmt.Println(r.Found(), r.SearchedUpTo)

	r, _ = db.MinZeroCombination(cols, 2, 6)
	fmt.Println(r.Weight, db.Stats().Searches)
	// Output:
	// false 4
	// 5 2
}
