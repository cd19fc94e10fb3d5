package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
	"github.com/nkeoboupha/svm-image-classifier/bmp/bmptest"
)

// corpusWithTwoClasses builds a minimal valid training tree and returns its
// root plus the path of one training image.
func corpusWithTwoClasses(t *testing.T) (string, string) {
	t.Helper()
	g := bmp.Geometry{Width: 4, Height: 4, BitsPerPixel: 8}
	root := t.TempDir()
	var sample string
	for class, fill := range map[string]byte{"a": 60, "b": 200} {
		dir := filepath.Join(root, class)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		path := filepath.Join(dir, "one.bmp")
		bmptest.WriteFile(t, path, g, bmptest.Bytes(g.VectorLen(), fill))
		if class == "a" {
			sample = path
		}
	}

	return root, sample
}

func TestResolveMode(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "img.bmp")
	require.NoError(t, os.WriteFile(file, []byte("BM"), 0o644))
	model := filepath.Join(dir, "model.nsvm")
	require.NoError(t, os.WriteFile(model, []byte("NSVM"), 0o644))
	subdir := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(subdir, 0o755))

	t.Run("DirTrainsToNewModel", func(t *testing.T) {
		m, err := resolveMode(dir, filepath.Join(dir, "missing.nsvm"))
		require.NoError(t, err)
		assert.Equal(t, modeTrain, m)
	})

	t.Run("DirTrainsOverExistingModel", func(t *testing.T) {
		m, err := resolveMode(dir, model)
		require.NoError(t, err)
		assert.Equal(t, modeTrain, m)
	})

	t.Run("FileClassifiesAgainstExistingModel", func(t *testing.T) {
		m, err := resolveMode(file, model)
		require.NoError(t, err)
		assert.Equal(t, modeClassify, m)
	})

	t.Run("MissingFirstArg", func(t *testing.T) {
		_, err := resolveMode(filepath.Join(dir, "nope"), model)
		assert.Error(t, err)
	})

	t.Run("FileNeedsExistingModel", func(t *testing.T) {
		_, err := resolveMode(file, filepath.Join(dir, "missing.nsvm"))
		assert.Error(t, err)
	})

	t.Run("SecondArgIsDirectory", func(t *testing.T) {
		_, err := resolveMode(file, subdir)
		assert.Error(t, err)
	})
}

// TestRun_TrainThenClassify drives the whole binary path: train a model
// from a tiny corpus, then classify one of its own training images.
func TestRun_TrainThenClassify(t *testing.T) {
	root, sample := corpusWithTwoClasses(t)
	model := filepath.Join(t.TempDir(), "model.nsvm")

	code := run([]string{"--steps", "2", "--lambda", "0", root, model})
	require.Equal(t, 0, code, "training must succeed")

	code = run([]string{sample, model})
	assert.Equal(t, 0, code, "classification must succeed")
}

func TestRun_BadArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"only-one-arg"}))
	assert.Equal(t, 1, run([]string{"/nonexistent/path", "/nonexistent/model"}))
}
