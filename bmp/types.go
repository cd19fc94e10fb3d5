package bmp

import "errors"

// Sentinel errors for bitmap validation.
var (
	// ErrBadMagic indicates the file does not begin with the BM signature.
	ErrBadMagic = errors.New("bmp: missing BM signature")
	// ErrBadGeometry indicates a zero dimension or an undersized DIB header.
	ErrBadGeometry = errors.New("bmp: invalid image geometry")
	// ErrUnsupportedDepth indicates a bits-per-pixel value outside {8,16,24,32}.
	ErrUnsupportedDepth = errors.New("bmp: unsupported bits-per-pixel")
	// ErrSizeMismatch indicates the recorded file size disagrees with the
	// size implied by the geometry (compressed or truncated input).
	ErrSizeMismatch = errors.New("bmp: recorded file size disagrees with geometry")
)

// Geometry holds the three header fields that fix an image's feature space.
//
// The sign of Height encodes row storage order: positive means rows are
// stored bottom-up (the bitmap default), negative means top-down. All
// dimension math uses the magnitude.
type Geometry struct {
	Width        uint32
	Height       int32
	BitsPerPixel uint16
}

// BytesPerPixel returns the per-pixel channel width in bytes.
func (g Geometry) BytesPerPixel() uint32 { return uint32(g.BitsPerPixel) / 8 }

// AbsHeight returns the row count regardless of storage order.
func (g Geometry) AbsHeight() uint32 {
	if g.Height < 0 {
		return uint32(-int64(g.Height))
	}

	return uint32(g.Height)
}

// TopDown reports whether rows are stored first-row-first.
func (g Geometry) TopDown() bool { return g.Height < 0 }

// RowBytes returns the payload bytes per row, padding excluded. The math
// is 64-bit: a 2^30-pixel row at 32bpp must not wrap to zero and sneak
// past the file-size cross-check.
func (g Geometry) RowBytes() uint64 { return uint64(g.Width) * uint64(g.BytesPerPixel()) }

// RowStride returns the stored bytes per row: RowBytes rounded up to the
// next multiple of 4.
func (g Geometry) RowStride() uint64 { return (g.RowBytes() + 3) &^ 3 }

// RowPadding returns the number of trailing pad bytes per stored row.
func (g Geometry) RowPadding() uint64 { return g.RowStride() - g.RowBytes() }

// VectorLen returns the feature-vector length: one dimension per
// pixel-channel byte, padding excluded.
func (g Geometry) VectorLen() uint64 {
	return uint64(g.Width) * uint64(g.AbsHeight()) * uint64(g.BytesPerPixel())
}

// SupportedDepth reports whether bpp is one of the whole-byte channel
// widths the system accepts. Model readers reuse it so a corrupt model
// cannot declare a depth no bitmap could have had.
func SupportedDepth(bpp uint16) bool {
	switch bpp {
	case 8, 16, 24, 32:
		return true
	}

	return false
}

// SameDims reports whether two geometries span the same feature space:
// equal width, height magnitude and depth. Storage order is deliberately
// ignored, it changes where rows live on disk, not what the image is.
func (g Geometry) SameDims(o Geometry) bool {
	return g.Width == o.Width &&
		g.AbsHeight() == o.AbsHeight() &&
		g.BitsPerPixel == o.BitsPerPixel
}
