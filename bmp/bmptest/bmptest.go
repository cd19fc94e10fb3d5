// Package bmptest writes small synthetic bitmaps for tests. The produced
// files are honest uncompressed BMPs: 14-byte file header, 40-byte
// BITMAPINFOHEADER, padded pixel rows, recorded sizes consistent with the
// geometry, so they pass the same validation as real inputs.
package bmptest

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

const (
	fileHeaderLen = 14
	dibHeaderLen  = 40
	dataOffset    = fileHeaderLen + dibHeaderLen
)

// Encode renders a bitmap with the given geometry from raster, the
// top-to-bottom, padding-free pixel-channel bytes (len must equal
// g.VectorLen()). Bottom-up geometries get their rows stored in reverse,
// exactly as a real encoder would.
func Encode(g bmp.Geometry, raster []byte) []byte {
	if uint64(len(raster)) != g.VectorLen() {
		panic("bmptest: raster length does not match geometry")
	}

	h := uint64(g.AbsHeight())
	stride := g.RowStride()
	rowBytes := g.RowBytes()
	fileSize := uint32(uint64(dataOffset) + stride*h)

	out := make([]byte, fileSize)
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], fileSize)
	binary.LittleEndian.PutUint32(out[10:], dataOffset)
	binary.LittleEndian.PutUint32(out[14:], dibHeaderLen)
	binary.LittleEndian.PutUint32(out[18:], g.Width)
	binary.LittleEndian.PutUint32(out[22:], uint32(g.Height))
	binary.LittleEndian.PutUint16(out[26:], 1) // planes
	binary.LittleEndian.PutUint16(out[28:], g.BitsPerPixel)

	for row := uint64(0); row < h; row++ {
		stored := row
		if !g.TopDown() {
			stored = h - 1 - row
		}
		src := raster[row*rowBytes : (row+1)*rowBytes]
		copy(out[uint64(dataOffset)+stored*stride:], src)
	}

	return out
}

// WriteFile encodes raster under geometry g and writes it to path,
// failing the test on any error.
func WriteFile(tb testing.TB, path string, g bmp.Geometry, raster []byte) {
	tb.Helper()
	if err := os.WriteFile(path, Encode(g, raster), 0o644); err != nil {
		tb.Fatalf("bmptest: write %s: %v", path, err)
	}
}

// Bytes returns n bytes filled with v, a convenience for uniform rasters.
func Bytes(n uint64, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}

	return b
}
