package modelfile_test

import (
	"fmt"

	"github.com/nkeoboupha/svm-image-classifier/modelfile"
)

// ExamplePairIndex shows the canonical vector order for four classes: all
// pairs led by class 0 first, then class 1, and so on.
func ExamplePairIndex() {
	const numClasses = 4
	for pos := uint64(0); pos < numClasses; pos++ {
		for neg := pos + 1; neg < numClasses; neg++ {
			fmt.Printf("(%d,%d) -> %d\n", pos, neg, modelfile.PairIndex(pos, neg, numClasses))
		}
	}
	// Output:
	// (0,1) -> 0
	// (0,2) -> 1
	// (0,3) -> 2
	// (1,2) -> 3
	// (1,3) -> 4
	// (2,3) -> 5
}

// ExampleNumPairs shows how the vector count grows with the class count.
func ExampleNumPairs() {
	for _, n := range []uint64{2, 3, 10} {
		fmt.Printf("%d classes -> %d vectors\n", n, modelfile.NumPairs(n))
	}
	// Output:
	// 2 classes -> 1 vectors
	// 3 classes -> 3 vectors
	// 10 classes -> 45 vectors
}
