package trainer

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
	"github.com/nkeoboupha/svm-image-classifier/corpus"
	"github.com/nkeoboupha/svm-image-classifier/modelfile"
)

// Train indexes the corpus under root, creates a fresh model at modelPath
// and runs the full Pegasos loop over it. The returned Summary describes
// the completed run.
func Train(root, modelPath string, opts Options) (*Summary, error) {
	if opts.Steps < 1 {
		return nil, ErrNoSteps
	}
	if opts.Lambda < 0 || math.IsNaN(opts.Lambda) {
		return nil, ErrBadLambda
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	classes, skippedClasses, err := corpus.DiscoverClasses(root)
	if err != nil {
		return nil, err
	}
	for _, s := range skippedClasses {
		logger.WithField("class", s.Name).WithError(s.Reason).Warn("class skipped")
	}

	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	if err = modelfile.CreateEmpty(modelPath, classes[0].Geom, names); err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"model":   modelPath,
		"classes": len(classes),
		"vectors": modelfile.NumPairs(uint64(len(classes))),
	}).Info("model file created")

	r := &run{
		modelPath: modelPath,
		classes:   classes,
		lambda:    opts.Lambda,
		logger:    logger,
		summary:   Summary{Classes: names, Steps: opts.Steps},
		rowBytes:  classes[0].Geom.RowBytes(),
	}

	for step := 0; step < opts.Steps; step++ {
		rate := 1 / math.Sqrt(float64(step+1))
		for ci := range classes {
			if err = r.trainClass(ci, rate); err != nil {
				return nil, err
			}
		}
		logger.WithFields(logrus.Fields{"step": step, "rate": rate}).Debug("step complete")
	}

	logger.WithFields(logrus.Fields{
		"steps":           r.summary.Steps,
		"updated_vectors": r.summary.UpdatedVectors,
		"skipped_samples": r.summary.SkippedSamples,
	}).Info("training complete")

	return &r.summary, nil
}

// run carries the per-run state shared by every step.
type run struct {
	modelPath string
	classes   []corpus.Class
	lambda    float64
	logger    logrus.FieldLogger
	summary   Summary
	rowBytes  uint64
}

// trainClass draws one sample for class ci and updates every pair vector
// that class participates in. The model file is opened fresh per draw and
// closed before returning.
func (r *run) trainClass(ci int, rate float64) error {
	c := r.classes[ci]

	sample, err := corpus.PickRandomSample(c.Dir, c.Samples)
	if err != nil {
		return err
	}
	norm, err := bmp.NormDivisor(sample)
	if err != nil {
		return err
	}
	if norm == 0 {
		// Nothing to learn from an all-zero sample.
		r.summary.SkippedSamples++
		r.logger.WithField("sample", sample).Debug("all-zero sample skipped")

		return nil
	}

	scanner, err := bmp.Open(sample)
	if err != nil {
		return err
	}
	defer scanner.Close()

	store, err := modelfile.OpenStore(r.modelPath)
	if err != nil {
		return err
	}

	err = r.updatePairs(store, scanner, ci, norm, rate)
	if cerr := store.Close(); err == nil {
		// A failed close can mean lost weight writes.
		err = cerr
	}

	return err
}

// updatePairs runs the per-pair updates for the drawn sample of class ci.
func (r *run) updatePairs(store *modelfile.Store, scanner *bmp.Scanner,
	ci int, norm, rate float64) error {
	numClasses := store.Header().NumClasses
	rowBuf := make([]byte, r.rowBytes)
	weights := make([]float64, r.rowBytes)

	for oi := range r.classes {
		if oi == ci {
			continue
		}
		pos, neg, sign := uint64(ci), uint64(oi), 1.0
		if pos > neg {
			pos, neg, sign = neg, pos, -1.0
		}
		pair := modelfile.PairIndex(pos, neg, numClasses)
		if err := r.updatePair(store, scanner, pair, sign, norm, rate, rowBuf, weights); err != nil {
			return err
		}
		r.summary.UpdatedVectors++
	}

	return nil
}

// updatePair applies one Pegasos update of pair's vector from the sample in
// scanner: a streamed dot-product pass decides the branch, a second
// streamed pass rewrites every weight in place.
func (r *run) updatePair(store *modelfile.Store, scanner *bmp.Scanner,
	pair uint64, sign, norm, rate float64, rowBuf []byte, weights []float64) error {
	dot, err := r.pairDot(store, scanner, pair, sign, norm, rowBuf, weights)
	if err != nil {
		return err
	}
	violated := dot < 1.0

	scanner.Reset()
	dim := uint64(0)
	for {
		n, err := scanner.NextRow(rowBuf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err = store.ReadSpan(pair, dim, weights[:n]); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			w := weights[i]
			if violated {
				w -= rate * (r.lambda*w - sign*float64(rowBuf[i])/norm)
			} else {
				w -= rate * r.lambda * w
			}
			weights[i] = w
		}
		if err = store.WriteSpan(pair, dim, weights[:n]); err != nil {
			return err
		}
		dim += uint64(n)
	}

	return nil
}

// pairDot streams sample bytes and stored weights in lock-step and returns
// the role-signed dot product of the normalized sample with pair's vector.
func (r *run) pairDot(store *modelfile.Store, scanner *bmp.Scanner,
	pair uint64, sign, norm float64, rowBuf []byte, weights []float64) (float64, error) {
	scanner.Reset()

	var sum float64
	dim := uint64(0)
	for {
		n, err := scanner.NextRow(rowBuf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if err = store.ReadSpan(pair, dim, weights[:n]); err != nil {
			return 0, err
		}
		for i := 0; i < n; i++ {
			sum += weights[i] * float64(rowBuf[i]) / norm
		}
		dim += uint64(n)
	}

	return sign * sum, nil
}
