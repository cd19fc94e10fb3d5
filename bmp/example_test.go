package bmp_test

import (
	"fmt"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

// ExampleGeometry shows the derived layout values for a 3-pixel-wide
// top-down 24bpp image: 9 payload bytes per row are stored in a 12-byte
// stride, and the 3 pad bytes never become feature dimensions.
func ExampleGeometry() {
	g := bmp.Geometry{Width: 3, Height: -2, BitsPerPixel: 24}
	fmt.Println("rowBytes:", g.RowBytes())
	fmt.Println("rowStride:", g.RowStride())
	fmt.Println("rowPadding:", g.RowPadding())
	fmt.Println("vectorLen:", g.VectorLen())
	fmt.Println("topDown:", g.TopDown())
	// Output:
	// rowBytes: 9
	// rowStride: 12
	// rowPadding: 3
	// vectorLen: 18
	// topDown: true
}
