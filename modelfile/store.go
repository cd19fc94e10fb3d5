package modelfile

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Store is the seek-based weight store used during training. Every read and
// write lands at an exact byte offset inside the vector block; no weight
// vector is ever held in memory beyond the caller's span buffer.
type Store struct {
	f   *os.File
	hdr Header
}

// OpenStore opens the model at path for reading and in-place weight writes.
func OpenStore(path string) (*Store, error) {
	hdr, err := ReadHeader(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "modelfile: open %s for writing", path)
	}

	return &Store{f: f, hdr: hdr}, nil
}

// Header returns the parsed model header.
func (s *Store) Header() Header { return s.hdr }

// Close releases the underlying file.
func (s *Store) Close() error { return s.f.Close() }

// checkRange validates that [dim, dim+n) lies inside vector pair.
func (h Header) checkRange(pair, dim, n uint64) error {
	if pair >= NumPairs(h.NumClasses) || dim+n > h.VectorLen {
		return errors.Wrapf(ErrVectorRange, "pair %d dim %d len %d (pairs %d, vectorLen %d)",
			pair, dim, n, NumPairs(h.NumClasses), h.VectorLen)
	}

	return nil
}

// weightOffset returns the absolute byte offset of weight dim of pair.
func (h Header) weightOffset(pair, dim uint64) int64 {
	return h.VectorBase + int64((pair*h.VectorLen+dim)*weightSize)
}

// ReadWeight returns a single weight.
func (s *Store) ReadWeight(pair, dim uint64) (float64, error) {
	if err := s.hdr.checkRange(pair, dim, 1); err != nil {
		return 0, err
	}

	var buf [weightSize]byte
	if _, err := s.f.ReadAt(buf[:], s.hdr.weightOffset(pair, dim)); err != nil {
		return 0, errors.Wrapf(err, "modelfile: read weight %d of pair %d", dim, pair)
	}

	return math.Float64frombits(binary.NativeEndian.Uint64(buf[:])), nil
}

// WriteWeight overwrites a single weight in place.
func (s *Store) WriteWeight(pair, dim uint64, w float64) error {
	if err := s.hdr.checkRange(pair, dim, 1); err != nil {
		return err
	}

	var buf [weightSize]byte
	binary.NativeEndian.PutUint64(buf[:], math.Float64bits(w))
	if _, err := s.f.WriteAt(buf[:], s.hdr.weightOffset(pair, dim)); err != nil {
		return errors.Wrapf(err, "modelfile: write weight %d of pair %d", dim, pair)
	}

	return nil
}

// ReadSpan fills dst with len(dst) consecutive weights of pair starting at
// dim. Spans let the trainer stream a vector one image row at a time.
func (s *Store) ReadSpan(pair, dim uint64, dst []float64) error {
	n := uint64(len(dst))
	if err := s.hdr.checkRange(pair, dim, n); err != nil {
		return err
	}

	buf := make([]byte, n*weightSize)
	if _, err := s.f.ReadAt(buf, s.hdr.weightOffset(pair, dim)); err != nil {
		return errors.Wrapf(err, "modelfile: read span at dim %d of pair %d", dim, pair)
	}
	for i := range dst {
		dst[i] = math.Float64frombits(binary.NativeEndian.Uint64(buf[i*weightSize:]))
	}

	return nil
}

// WriteSpan overwrites len(src) consecutive weights of pair starting at dim.
func (s *Store) WriteSpan(pair, dim uint64, src []float64) error {
	n := uint64(len(src))
	if err := s.hdr.checkRange(pair, dim, n); err != nil {
		return err
	}

	buf := make([]byte, n*weightSize)
	for i, w := range src {
		binary.NativeEndian.PutUint64(buf[i*weightSize:], math.Float64bits(w))
	}
	if _, err := s.f.WriteAt(buf, s.hdr.weightOffset(pair, dim)); err != nil {
		return errors.Wrapf(err, "modelfile: write span at dim %d of pair %d", dim, pair)
	}

	return nil
}

var _ WeightReader = (*Store)(nil)
