package bmp

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Scanner streams the pixel-channel bytes of one bitmap in top-to-bottom
// raster order, one row per NextRow call, padding excluded. For top-down
// files rows are read sequentially from the pixel array; for bottom-up
// files each raster row is read from its mirrored position at the end of
// the array, so the emitted order is identical either way.
//
// A Scanner holds one open file descriptor and no pixel data beyond the
// caller's row buffer.
type Scanner struct {
	f    *os.File
	geom Geometry
	base uint32 // pixel-array offset from readHeader
	row  uint32 // next raster row to emit
}

// Open validates the bitmap at path and returns a Scanner positioned at
// raster row 0.
func Open(path string) (*Scanner, error) {
	h, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bmp: open %s", path)
	}

	return &Scanner{f: f, geom: h.geom, base: h.dataOffset}, nil
}

// Geometry returns the validated geometry of the underlying file.
func (s *Scanner) Geometry() Geometry { return s.geom }

// NextRow reads the next raster row into buf and returns the number of
// payload bytes written (always Geometry().RowBytes() on success).
// After the last row it returns io.EOF.
// buf must hold at least RowBytes bytes.
func (s *Scanner) NextRow(buf []byte) (int, error) {
	g := s.geom
	if s.row >= g.AbsHeight() {
		return 0, io.EOF
	}
	n := g.RowBytes()
	if uint64(len(buf)) < n {
		return 0, errors.Errorf("bmp: row buffer %d bytes, need %d", len(buf), n)
	}

	// Stored row index: identity for top-down files, mirrored for bottom-up.
	stored := s.row
	if !g.TopDown() {
		stored = g.AbsHeight() - 1 - s.row
	}
	off := int64(s.base) + int64(stored)*int64(g.RowStride())

	if _, err := s.f.ReadAt(buf[:n], off); err != nil {
		return 0, errors.Wrapf(err, "bmp: read row %d of %s", s.row, s.f.Name())
	}
	s.row++

	return int(n), nil
}

// Reset rewinds the Scanner to raster row 0.
func (s *Scanner) Reset() { s.row = 0 }

// Close releases the underlying file.
func (s *Scanner) Close() error { return s.f.Close() }

// NormDivisor computes the L2 norm of every pixel-channel byte of the
// bitmap at path in a single streaming pass. A zero return means the image
// is all-zero; callers treat that as "skip", not as an error.
func NormDivisor(path string) (float64, error) {
	s, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	buf := make([]byte, s.geom.RowBytes())
	var sum float64
	for {
		n, err := s.NextRow(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		for _, b := range buf[:n] {
			sum += float64(b) * float64(b)
		}
	}

	return math.Sqrt(sum), nil
}
