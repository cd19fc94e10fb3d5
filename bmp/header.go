package bmp

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Byte layout of the bitmap file header and the leading DIB fields.
// Offsets are from the start of the file.
const (
	offMagic      = 0  // 2 bytes, "BM"
	offFileSize   = 2  // 4 bytes, total file size
	offDataOffset = 10 // 4 bytes, start of the pixel array
	offDIBSize    = 14 // 4 bytes, DIB header size
	offWidth      = 18 // 4 bytes
	offHeight     = 22 // 4 bytes, signed
	offDepth      = 28 // 2 bytes, bits per pixel

	headerProbeLen = 30 // bytes needed to cover all fields above
	minDIBSize     = 40 // BITMAPINFOHEADER
)

var magicTag = [2]byte{'B', 'M'}

// fileHeader carries the raw header fields ReadGeometry validates plus the
// pixel-array offset the Scanner seeks to.
type fileHeader struct {
	fileSize   uint32
	dataOffset uint32
	dibSize    uint32
	geom       Geometry
}

// ProbeMagic reports whether the file at path begins with the BM signature.
// Any I/O failure is a rejection, never an error: the caller is filtering
// candidates, not validating a chosen input.
func ProbeMagic(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var tag [2]byte
	if _, err = f.ReadAt(tag[:], offMagic); err != nil {
		return false
	}

	return tag == magicTag
}

// readHeader reads and validates the header fields at their fixed offsets.
func readHeader(path string) (fileHeader, error) {
	var h fileHeader

	f, err := os.Open(path)
	if err != nil {
		return h, errors.Wrapf(err, "bmp: open %s", path)
	}
	defer f.Close()

	buf := make([]byte, headerProbeLen)
	if _, err = f.ReadAt(buf, 0); err != nil {
		return h, errors.Wrapf(err, "bmp: read header of %s", path)
	}

	if buf[offMagic] != magicTag[0] || buf[offMagic+1] != magicTag[1] {
		return h, errors.Wrapf(ErrBadMagic, "%s", path)
	}

	h.fileSize = binary.LittleEndian.Uint32(buf[offFileSize:])
	h.dataOffset = binary.LittleEndian.Uint32(buf[offDataOffset:])
	h.dibSize = binary.LittleEndian.Uint32(buf[offDIBSize:])
	h.geom = Geometry{
		Width:        binary.LittleEndian.Uint32(buf[offWidth:]),
		Height:       int32(binary.LittleEndian.Uint32(buf[offHeight:])),
		BitsPerPixel: binary.LittleEndian.Uint16(buf[offDepth:]),
	}

	if err = validateHeader(h, path); err != nil {
		return fileHeader{}, err
	}

	return h, nil
}

// validateHeader applies the geometry rules and the recorded-size cross-check
// that rejects compressed, palette-indexed or truncated files.
func validateHeader(h fileHeader, path string) error {
	g := h.geom
	if g.Width == 0 || g.Height == 0 {
		return errors.Wrapf(ErrBadGeometry, "%s: width=%d height=%d", path, g.Width, g.Height)
	}
	if h.dibSize < minDIBSize {
		return errors.Wrapf(ErrBadGeometry, "%s: DIB header size %d", path, h.dibSize)
	}

	if !SupportedDepth(g.BitsPerPixel) {
		return errors.Wrapf(ErrUnsupportedDepth, "%s: %d bpp", path, g.BitsPerPixel)
	}

	// The expected size must fit in the format's 32-bit size field; the
	// stepwise bound keeps the product itself from wrapping uint64.
	stride, rows := g.RowStride(), uint64(g.AbsHeight())
	if stride > math.MaxUint32 || rows > math.MaxUint32/stride {
		return errors.Wrapf(ErrSizeMismatch, "%s: pixel data exceeds 32-bit size", path)
	}
	expected := stride*rows + uint64(h.dataOffset)
	if expected > math.MaxUint32 || expected != uint64(h.fileSize) {
		return errors.Wrapf(ErrSizeMismatch, "%s: recorded %d, expected %d",
			path, h.fileSize, expected)
	}

	return nil
}

// ReadGeometry parses and validates the geometry of the bitmap at path.
func ReadGeometry(path string) (Geometry, error) {
	h, err := readHeader(path)
	if err != nil {
		return Geometry{}, err
	}

	return h.geom, nil
}
