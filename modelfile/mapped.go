package modelfile

import (
	"encoding/binary"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MappedStore serves weight reads from a read-only memory mapping of the
// model file. Classification touches every vector of the block exactly
// once, which the page cache handles better than a seek per span; the
// mapping is read-only so the in-place-mutation discipline of training is
// not bypassed.
type MappedStore struct {
	f    *os.File
	data mmap.MMap
	hdr  Header
}

// OpenMapped maps the model at path read-only.
func OpenMapped(path string) (*MappedStore, error) {
	hdr, err := ReadHeader(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "modelfile: open %s", path)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()

		return nil, errors.Wrapf(err, "modelfile: mmap %s", path)
	}
	if int64(len(data)) < hdr.FileSize() {
		data.Unmap()
		f.Close()

		return nil, errors.Errorf("modelfile: %s truncated: %d bytes, header implies %d",
			path, len(data), hdr.FileSize())
	}

	return &MappedStore{f: f, data: data, hdr: hdr}, nil
}

// Header returns the parsed model header.
func (m *MappedStore) Header() Header { return m.hdr }

// ReadWeight returns a single weight.
func (m *MappedStore) ReadWeight(pair, dim uint64) (float64, error) {
	if err := m.hdr.checkRange(pair, dim, 1); err != nil {
		return 0, err
	}
	off := m.hdr.weightOffset(pair, dim)

	return math.Float64frombits(binary.NativeEndian.Uint64(m.data[off:])), nil
}

// ReadSpan fills dst with consecutive weights of pair starting at dim.
func (m *MappedStore) ReadSpan(pair, dim uint64, dst []float64) error {
	if err := m.hdr.checkRange(pair, dim, uint64(len(dst))); err != nil {
		return err
	}
	off := m.hdr.weightOffset(pair, dim)
	for i := range dst {
		dst[i] = math.Float64frombits(
			binary.NativeEndian.Uint64(m.data[off+int64(i*weightSize):]))
	}

	return nil
}

// WriteWeight always fails: the mapping is read-only.
func (m *MappedStore) WriteWeight(pair, dim uint64, w float64) error {
	return ErrReadOnlyStore
}

// WriteSpan always fails: the mapping is read-only.
func (m *MappedStore) WriteSpan(pair, dim uint64, src []float64) error {
	return ErrReadOnlyStore
}

// Close unmaps the file and releases the descriptor.
func (m *MappedStore) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.f.Close()

		return errors.Wrap(err, "modelfile: unmap")
	}

	return m.f.Close()
}

var _ WeightReader = (*MappedStore)(nil)
