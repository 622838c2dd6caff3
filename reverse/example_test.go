package reverse_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/reverse"
)

// ExampleString demonstrates rune-aware string reversal.
func ExampleString() {
	fmt.Println(reverse.String("a1b2c3"))
	fmt.Println(reverse.String("日本語"))
	// Output:
	// 3c2b1a
	// 語本日
}

// ExampleSlice demonstrates the generic slice form.
func ExampleSlice() {
	fmt.Println(reverse.Slice([]int{1, 2, 3, 4}))
	// Output:
	// [4 3 2 1]
}
