package modelfile

import (
	"errors"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

// Format constants. Magic identifies the file type; DoubleSize is the float
// width this implementation writes and the only one it accepts back.
const (
	Magic      = "NSVM"
	DoubleSize = 8

	weightSize = DoubleSize

	// fixedHeaderLen covers magic through numClasses:
	// 4 + 1 + 4 + 4 + 2 + 8 bytes.
	fixedHeaderLen = 23

	// MaxNameLen is the longest storable class name (u8 length prefix).
	MaxNameLen = 255
)

// Sentinel errors for model-file validation and access.
var (
	// ErrBadModelMagic indicates the file does not start with the NSVM tag.
	ErrBadModelMagic = errors.New("modelfile: missing NSVM magic")
	// ErrFloatWidth indicates the file was written with a different
	// floating-point width than this host uses.
	ErrFloatWidth = errors.New("modelfile: float width mismatch")
	// ErrTooFewClasses indicates fewer than two classes.
	ErrTooFewClasses = errors.New("modelfile: a model needs at least two classes")
	// ErrNameLength indicates an empty or over-long class name.
	ErrNameLength = errors.New("modelfile: class name length out of range")
	// ErrHostEndianness indicates a big-endian host; the native-byte-order
	// format is only defined on little-endian machines.
	ErrHostEndianness = errors.New("modelfile: unsupported host byte order")
	// ErrVectorRange indicates a pair or dimension index outside the block.
	ErrVectorRange = errors.New("modelfile: vector index out of range")
	// ErrReadOnlyStore indicates a write through a read-only store.
	ErrReadOnlyStore = errors.New("modelfile: store is read-only")
)

// Header is everything in a model file before the vector block, plus the
// derived values needed to address into it.
type Header struct {
	Geom       bmp.Geometry
	NumClasses uint64
	ClassNames []string

	// VectorBase is the byte offset of the first weight of pair (0,1).
	VectorBase int64
	// VectorLen is the number of weights per pair vector,
	// Geom.Width × |Geom.Height| × bytesPerPixel.
	VectorLen uint64
}

// FileSize returns the exact byte size of a well-formed model file with
// this header.
func (h Header) FileSize() int64 {
	return h.VectorBase + int64(NumPairs(h.NumClasses)*h.VectorLen)*weightSize
}

// WeightReader is the read surface shared by Store and MappedStore; the
// classifier depends on it rather than on a concrete backend.
type WeightReader interface {
	Header() Header
	ReadWeight(pair, dim uint64) (float64, error)
	ReadSpan(pair, dim uint64, dst []float64) error
	Close() error
}
