package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/depdecode/matrix"
)

// ExampleMaskFromLengths pads two sentences of 2 and 3 tokens to n=4.
func ExampleMaskFromLengths() {
	m, err := matrix.MaskFromLengths([]int{2, 3}, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Lengths())
	// Output:
	// [2 3]
}

// ExampleTensor_Sentence forbids an arc through a per-sentence view.
func ExampleTensor_Sentence() {
	ts, _ := matrix.NewTensor(1, 3)
	s, _ := ts.Sentence(0)
	_ = s.Set(1, 2, math.Inf(-1)) // token 2 may not head token 1
	fmt.Print(s)
	// Output:
	// [0, 0, 0]
	// [0, 0, -Inf]
	// [0, 0, 0]
}
