package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
)

// hidden reports whether a directory entry should be ignored.
func hidden(name string) bool { return strings.HasPrefix(name, ".") }

// usableSample reports whether entry is a sample candidate: non-hidden
// regular file carrying the bitmap signature.
func usableSample(dir string, entry os.DirEntry) bool {
	if hidden(entry.Name()) || !entry.Type().IsRegular() {
		return false
	}

	return bmp.ProbeMagic(filepath.Join(dir, entry.Name()))
}

// CountSamples counts the usable samples in one class directory.
func CountSamples(dir string) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "corpus: read class dir %s", dir)
	}

	var n uint64
	for _, entry := range entries {
		if usableSample(dir, entry) {
			n++
		}
	}
	if n == 0 {
		return 0, errors.Wrapf(ErrEmptyClass, "%s", dir)
	}

	return n, nil
}

// ValidateClassDims asserts every usable sample in dir shares the geometry
// of the first one and returns that geometry. Every mismatching file is
// named in the returned error; one bad sample rejects the whole class.
func ValidateClassDims(dir string) (bmp.Geometry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return bmp.Geometry{}, errors.Wrapf(err, "corpus: read class dir %s", dir)
	}

	var (
		ref      bmp.Geometry
		haveRef  bool
		mismatch []string
	)
	for _, entry := range entries {
		if !usableSample(dir, entry) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		geom, err := bmp.ReadGeometry(path)
		if err != nil {
			return bmp.Geometry{}, err
		}
		if !haveRef {
			ref, haveRef = geom, true

			continue
		}
		if !geom.SameDims(ref) {
			mismatch = append(mismatch, entry.Name())
		}
	}

	if !haveRef {
		return bmp.Geometry{}, errors.Wrapf(ErrEmptyClass, "%s", dir)
	}
	if len(mismatch) > 0 {
		return bmp.Geometry{}, errors.Wrapf(ErrGeometryMismatch, "%s: %s",
			dir, strings.Join(mismatch, ", "))
	}

	return ref, nil
}

// DiscoverClasses indexes the corpus root. Classes appear in directory
// order; that order defines the class indices stored in the model. A class
// that fails validation, or whose geometry differs from the first usable
// class, is skipped with its reason; fewer than two survivors is fatal.
func DiscoverClasses(root string) ([]Class, []Skipped, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "corpus: read root %s", root)
	}

	var (
		classes []Class
		skipped []Skipped
	)
	for _, entry := range entries {
		if hidden(entry.Name()) || !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		geom, err := ValidateClassDims(dir)
		if err == nil && len(classes) > 0 && !geom.SameDims(classes[0].Geom) {
			err = errors.Wrapf(ErrGeometryMismatch, "%s: differs from class %s",
				dir, classes[0].Name)
		}
		var count uint64
		if err == nil {
			count, err = CountSamples(dir)
		}
		if err != nil {
			skipped = append(skipped, Skipped{Name: entry.Name(), Reason: err})

			continue
		}

		classes = append(classes, Class{
			Name:    entry.Name(),
			Dir:     dir,
			Samples: count,
			Geom:    geom,
		})
	}

	if len(classes) < 2 {
		return nil, skipped, errors.Wrapf(ErrTooFewClasses, "%s: found %d", root, len(classes))
	}

	return classes, skipped, nil
}

// PickRandomSample draws one usable sample from dir uniformly at random.
// count must be the CountSamples result for dir; the draw re-walks the
// directory so no listing is retained between calls.
func PickRandomSample(dir string, count uint64) (string, error) {
	if count == 0 {
		return "", errors.Wrapf(ErrEmptyClass, "%s", dir)
	}

	idx, err := randUint64n(count)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "corpus: read class dir %s", dir)
	}
	for _, entry := range entries {
		if !usableSample(dir, entry) {
			continue
		}
		if idx == 0 {
			return filepath.Join(dir, entry.Name()), nil
		}
		idx--
	}

	// The directory shrank between counting and drawing.
	return "", errors.Wrapf(ErrEmptyClass, "%s: fewer samples than expected", dir)
}
