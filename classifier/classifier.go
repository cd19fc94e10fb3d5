package classifier

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nkeoboupha/svm-image-classifier/bmp"
	"github.com/nkeoboupha/svm-image-classifier/modelfile"
)

// Classify votes the image at imagePath against every pair vector of the
// model at modelPath and returns the tally, winners and confidence.
func Classify(imagePath, modelPath string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	store, err := modelfile.OpenMapped(modelPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	hdr := store.Header()
	geom, err := bmp.ReadGeometry(imagePath)
	if err != nil {
		return nil, err
	}
	if !geom.SameDims(hdr.Geom) {
		return nil, errors.Wrapf(ErrGeometryMismatch,
			"image %dx%dx%d, model %dx%dx%d",
			geom.Width, geom.AbsHeight(), geom.BitsPerPixel,
			hdr.Geom.Width, hdr.Geom.AbsHeight(), hdr.Geom.BitsPerPixel)
	}

	norm, err := bmp.NormDivisor(imagePath)
	if err != nil {
		return nil, err
	}

	votes := make([]int, hdr.NumClasses)
	scanner, err := bmp.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	rowBuf := make([]byte, geom.RowBytes())
	weights := make([]float64, geom.RowBytes())
	for pos := uint64(0); pos < hdr.NumClasses; pos++ {
		for neg := pos + 1; neg < hdr.NumClasses; neg++ {
			// An all-zero image has no projection onto any vector.
			dot := 0.0
			if norm != 0 {
				pair := modelfile.PairIndex(pos, neg, hdr.NumClasses)
				dot, err = pairDot(store, scanner, pair, norm, rowBuf, weights)
				if err != nil {
					return nil, err
				}
			}
			if dot > 0 {
				votes[pos]++
			} else {
				votes[neg]++
			}
		}
	}

	res := tally(hdr, votes)
	logger.WithFields(logrus.Fields{
		"image":   imagePath,
		"winners": res.Winners,
		"percent": res.Percent,
	}).Info("classification complete")

	return res, nil
}

// pairDot streams the image and one stored vector in lock-step. Unlike
// training there is no role sign: the pair's natural orientation is the
// classification signal.
func pairDot(store modelfile.WeightReader, scanner *bmp.Scanner,
	pair uint64, norm float64, rowBuf []byte, weights []float64) (float64, error) {
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

	return sum, nil
}

// tally finds the winning class(es) and computes the confidence share.
func tally(hdr modelfile.Header, votes []int) *Result {
	maxVotes := 0
	for _, v := range votes {
		if v > maxVotes {
			maxVotes = v
		}
	}

	var winners []string
	for i, v := range votes {
		if v == maxVotes {
			winners = append(winners, hdr.ClassNames[i])
		}
	}

	n := len(winners)
	percent := float64(n*maxVotes) / float64(n*int(hdr.NumClasses-1)) * 100

	return &Result{Votes: votes, Winners: winners, Percent: percent}
}
