package bmp_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
	"github.com/nkeoboupha/svm-image-classifier/bmp/bmptest"
)

// benchImage writes a 64x64x24 bitmap and returns its path.
func benchImage(b *testing.B, topDown bool) string {
	b.Helper()
	g := bmp.Geometry{Width: 64, Height: 64, BitsPerPixel: 24}
	if topDown {
		g.Height = -64
	}
	raster := make([]byte, g.VectorLen())
	for i := range raster {
		raster[i] = byte(i)
	}
	path := filepath.Join(b.TempDir(), "bench.bmp")
	bmptest.WriteFile(b, path, g, raster)

	return path
}

func benchmarkScanner(b *testing.B, topDown bool) {
	path := benchImage(b, topDown)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := bmp.Open(path)
		if err != nil {
			b.Fatalf("Open failed: %v", err)
		}
		buf := make([]byte, s.Geometry().RowBytes())
		for {
			if _, err = s.NextRow(buf); err == io.EOF {
				break
			} else if err != nil {
				b.Fatalf("NextRow failed: %v", err)
			}
		}
		s.Close()
	}
}

// BenchmarkScanner_BottomUp streams a bottom-up file (mirrored row reads).
func BenchmarkScanner_BottomUp(b *testing.B) { benchmarkScanner(b, false) }

// BenchmarkScanner_TopDown streams a top-down file (sequential row reads).
func BenchmarkScanner_TopDown(b *testing.B) { benchmarkScanner(b, true) }

// BenchmarkNormDivisor measures the one-pass L2 norm over a 64x64x24 image.
func BenchmarkNormDivisor(b *testing.B) {
	path := benchImage(b, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bmp.NormDivisor(path); err != nil {
			b.Fatalf("NormDivisor failed: %v", err)
		}
	}
}
