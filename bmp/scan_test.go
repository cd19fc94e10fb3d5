package bmp_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
	"github.com/nkeoboupha/svm-image-classifier/bmp/bmptest"
)

// drain reads every raster row of path into one slice.
func drain(t *testing.T, path string) []byte {
	t.Helper()
	s, err := bmp.Open(path)
	require.NoError(t, err)
	defer s.Close()

	buf := make([]byte, s.Geometry().RowBytes())
	var out []byte
	for {
		n, err := s.NextRow(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, buf[:n]...)
	}

	return out
}

// raster returns deterministic, row-distinguishable pixel bytes.
func raster(g bmp.Geometry) []byte {
	b := make([]byte, g.VectorLen())
	for i := range b {
		b[i] = byte(i*31 + 7)
	}

	return b
}

func TestScanner_RasterOrderIndependentOfStorage(t *testing.T) {
	bottomUp := bmp.Geometry{Width: 3, Height: 4, BitsPerPixel: 24}
	topDown := bmp.Geometry{Width: 3, Height: -4, BitsPerPixel: 24}
	px := raster(bottomUp)

	dir := t.TempDir()
	up := filepath.Join(dir, "up.bmp")
	down := filepath.Join(dir, "down.bmp")
	bmptest.WriteFile(t, up, bottomUp, px)
	bmptest.WriteFile(t, down, topDown, px)

	assert.Equal(t, px, drain(t, up), "bottom-up file must stream in raster order")
	assert.Equal(t, px, drain(t, down), "top-down file must stream in raster order")
}

func TestScanner_PaddingNeverEmitted(t *testing.T) {
	// width 3 at 8bpp: 3 payload bytes per row, 1 pad byte on disk.
	g := bmp.Geometry{Width: 3, Height: 2, BitsPerPixel: 8}
	px := []byte{1, 2, 3, 4, 5, 6}
	path := filepath.Join(t.TempDir(), "padded.bmp")
	bmptest.WriteFile(t, path, g, px)

	assert.Equal(t, px, drain(t, path))
}

func TestScanner_Reset(t *testing.T) {
	g := bmp.Geometry{Width: 2, Height: 2, BitsPerPixel: 8}
	path := filepath.Join(t.TempDir(), "img.bmp")
	bmptest.WriteFile(t, path, g, []byte{1, 2, 3, 4})

	s, err := bmp.Open(path)
	require.NoError(t, err)
	defer s.Close()

	buf := make([]byte, g.RowBytes())
	_, err = s.NextRow(buf)
	require.NoError(t, err)
	first := append([]byte(nil), buf...)

	s.Reset()
	_, err = s.NextRow(buf)
	require.NoError(t, err)
	assert.Equal(t, first, buf)
}

func TestScanner_ShortRowBuffer(t *testing.T) {
	g := bmp.Geometry{Width: 4, Height: 1, BitsPerPixel: 24}
	path := filepath.Join(t.TempDir(), "img.bmp")
	bmptest.WriteFile(t, path, g, bmptest.Bytes(g.VectorLen(), 1))

	s, err := bmp.Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.NextRow(make([]byte, 3))
	assert.Error(t, err)
}

func TestNormDivisor(t *testing.T) {
	g := bmp.Geometry{Width: 2, Height: 1, BitsPerPixel: 8}
	path := filepath.Join(t.TempDir(), "img.bmp")
	bmptest.WriteFile(t, path, g, []byte{3, 4})

	norm, err := bmp.NormDivisor(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, norm)
}

func TestNormDivisor_AllZeroSample(t *testing.T) {
	g := bmp.Geometry{Width: 4, Height: 4, BitsPerPixel: 8}
	path := filepath.Join(t.TempDir(), "zero.bmp")
	bmptest.WriteFile(t, path, g, bmptest.Bytes(g.VectorLen(), 0))

	norm, err := bmp.NormDivisor(path)
	require.NoError(t, err)
	assert.Zero(t, norm)
}

// TestNormDivisor_StorageOrderInvariant pins the property that flipping the
// height sign (same pixel content, different on-disk row order) cannot change
// the normalization divisor.
func TestNormDivisor_StorageOrderInvariant(t *testing.T) {
	px := raster(bmp.Geometry{Width: 5, Height: 3, BitsPerPixel: 24})
	dir := t.TempDir()

	up := filepath.Join(dir, "up.bmp")
	down := filepath.Join(dir, "down.bmp")
	bmptest.WriteFile(t, up, bmp.Geometry{Width: 5, Height: 3, BitsPerPixel: 24}, px)
	bmptest.WriteFile(t, down, bmp.Geometry{Width: 5, Height: -3, BitsPerPixel: 24}, px)

	nUp, err := bmp.NormDivisor(up)
	require.NoError(t, err)
	nDown, err := bmp.NormDivisor(down)
	require.NoError(t, err)
	assert.Equal(t, nUp, nDown)
}
