package codebook_test

import (
	"fmt"

	"github.com/katalvlaran/umatrix/codebook"
)

// ExampleParse reads a 3×1 codebook of 2-dimensional vectors. The third
// token of each record is a label and is discarded.
func ExampleParse() {
	doc := "2 hexa 3 1 bubble\r\n" +
		"0.5 1.5 a\r\n" +
		"1 2 b\r\n" +
		"-1 0 c\r\n"

	cb, err := codebook.Parse(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("header:", cb.Header)
	for col, v := range cb.Vectors[0] {
		fmt.Println(col, v)
	}

	// Output:
	// header: 2 hexa 3 1
	// 0 [0.5 1.5]
	// 1 [1 2]
	// 2 [-1 0]
}
