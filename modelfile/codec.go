package modelfile

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

// zeroChunkLen sizes the scratch buffer used to zero-fill the vector block.
const zeroChunkLen = 64 * 1024

// CreateEmpty writes a complete, zero-weight model file at path, truncating
// any previous content. classNames must be in corpus discovery order; that
// order defines the class indices for the life of the file.
//
// There is no rollback: an I/O failure leaves a partial file behind and the
// error tells the caller which path to clean up.
func CreateEmpty(path string, geom bmp.Geometry, classNames []string) error {
	if err := CheckHost(); err != nil {
		return err
	}
	if len(classNames) < 2 {
		return errors.Wrapf(ErrTooFewClasses, "got %d", len(classNames))
	}
	for _, name := range classNames {
		if len(name) == 0 || len(name) > MaxNameLen {
			return errors.Wrapf(ErrNameLength, "%q", name)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "modelfile: create %s", path)
	}

	if err = writeModel(f, geom, classNames); err != nil {
		f.Close()

		return errors.Wrapf(err, "modelfile: write %s", path)
	}

	return errors.Wrapf(f.Close(), "modelfile: close %s", path)
}

// writeModel emits header, class table and the zeroed vector block.
func writeModel(f *os.File, geom bmp.Geometry, classNames []string) error {
	w := bufio.NewWriter(f)

	if _, err := w.WriteString(Magic); err != nil {
		return err
	}
	if err := w.WriteByte(DoubleSize); err != nil {
		return err
	}

	// width u32 + height i32 + bitsPerPixel u16 + numClasses u64.
	var fixed [18]byte
	binary.NativeEndian.PutUint32(fixed[0:], geom.Width)
	binary.NativeEndian.PutUint32(fixed[4:], uint32(geom.Height))
	binary.NativeEndian.PutUint16(fixed[8:], geom.BitsPerPixel)
	binary.NativeEndian.PutUint64(fixed[10:], uint64(len(classNames)))
	if _, err := w.Write(fixed[:]); err != nil {
		return err
	}

	for _, name := range classNames {
		if err := w.WriteByte(byte(len(name))); err != nil {
			return err
		}
		if _, err := w.WriteString(name); err != nil {
			return err
		}
	}

	remaining := NumPairs(uint64(len(classNames))) * geom.VectorLen() * weightSize
	zeros := make([]byte, zeroChunkLen)
	for remaining > 0 {
		n := uint64(len(zeros))
		if remaining < n {
			n = remaining
		}
		if _, err := w.Write(zeros[:n]); err != nil {
			return err
		}
		remaining -= n
	}

	return w.Flush()
}

// ReadHeader parses the model header at path: magic, float width, geometry,
// class count and the class-name table, returning the derived vector-block
// location alongside.
func ReadHeader(path string) (Header, error) {
	if err := CheckHost(); err != nil {
		return Header{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Header{}, errors.Wrapf(err, "modelfile: open %s", path)
	}
	defer f.Close()

	hdr, err := readHeader(f)
	if err != nil {
		return Header{}, errors.Wrapf(err, "modelfile: %s", path)
	}

	return hdr, nil
}

func readHeader(r io.Reader) (Header, error) {
	var hdr Header

	fixed := make([]byte, fixedHeaderLen)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return hdr, errors.Wrap(err, "read header")
	}
	if string(fixed[:4]) != Magic {
		return hdr, ErrBadModelMagic
	}
	if fixed[4] != DoubleSize {
		return hdr, errors.Wrapf(ErrFloatWidth, "file has %d-byte doubles, host has %d",
			fixed[4], DoubleSize)
	}

	hdr.Geom = bmp.Geometry{
		Width:        binary.NativeEndian.Uint32(fixed[5:]),
		Height:       int32(binary.NativeEndian.Uint32(fixed[9:])),
		BitsPerPixel: binary.NativeEndian.Uint16(fixed[13:]),
	}
	hdr.NumClasses = binary.NativeEndian.Uint64(fixed[15:])
	if hdr.NumClasses < 2 {
		return hdr, errors.Wrapf(ErrTooFewClasses, "file declares %d", hdr.NumClasses)
	}
	if hdr.Geom.Width == 0 || hdr.Geom.Height == 0 || !bmp.SupportedDepth(hdr.Geom.BitsPerPixel) {
		return hdr, errors.Errorf("corrupt geometry %+v", hdr.Geom)
	}

	hdr.ClassNames = make([]string, 0, hdr.NumClasses)
	tableLen := int64(0)
	lenByte := make([]byte, 1)
	for i := uint64(0); i < hdr.NumClasses; i++ {
		if _, err := io.ReadFull(r, lenByte); err != nil {
			return hdr, errors.Wrapf(err, "read class %d name length", i)
		}
		if lenByte[0] == 0 {
			return hdr, errors.Wrapf(ErrNameLength, "class %d", i)
		}
		name := make([]byte, lenByte[0])
		if _, err := io.ReadFull(r, name); err != nil {
			return hdr, errors.Wrapf(err, "read class %d name", i)
		}
		hdr.ClassNames = append(hdr.ClassNames, string(name))
		tableLen += 1 + int64(lenByte[0])
	}

	hdr.VectorBase = fixedHeaderLen + tableLen
	hdr.VectorLen = hdr.Geom.VectorLen()

	return hdr, nil
}
