package corpus

import (
	"errors"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

// Sentinel errors for corpus indexing.
var (
	// ErrTooFewClasses indicates fewer than two usable classes survived.
	ErrTooFewClasses = errors.New("corpus: need at least two usable classes")
	// ErrEmptyClass indicates a class directory with no usable sample.
	ErrEmptyClass = errors.New("corpus: class directory has no usable samples")
	// ErrGeometryMismatch indicates samples or classes with differing
	// width, height magnitude or bits-per-pixel.
	ErrGeometryMismatch = errors.New("corpus: sample geometry mismatch")
)

// Class is one validated training class.
type Class struct {
	// Name is the subdirectory name; it becomes the stored class name.
	Name string
	// Dir is the full path of the class directory.
	Dir string
	// Samples is the number of usable samples found at discovery time.
	Samples uint64
	// Geom is the shared geometry of every sample in the class.
	Geom bmp.Geometry
}

// Skipped records a class directory that discovery excluded and why, so
// callers can surface it without failing the run.
type Skipped struct {
	Name   string
	Reason error
}
