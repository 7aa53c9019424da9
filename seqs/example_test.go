package seqs_test

import (
	"fmt"

	"lazyseq/seqs"
	"lazyseq/views"
)

func ExampleMap() {
	// Pull the first three elements of an infinite view.
	squares := seqs.Map(views.All(views.Iota(1)), func(v int) int {
		return v * v
	})

	for v := range seqs.Take(squares, 3) {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 4
	// 9
}
