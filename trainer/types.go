package trainer

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for option validation.
var (
	// ErrNoSteps indicates a non-positive step count.
	ErrNoSteps = errors.New("trainer: step count must be positive")
	// ErrBadLambda indicates a negative or NaN regularization constant.
	ErrBadLambda = errors.New("trainer: lambda must be a non-negative number")
)

// Options configures a training run.
type Options struct {
	// Steps is the fixed number of training iterations.
	Steps int
	// Lambda is the Pegasos regularization constant.
	Lambda float64
	// Logger receives progress output; nil silences it via the default.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the standard configuration: 1000 steps,
// lambda 1e-4, the process-wide logrus logger.
func DefaultOptions() Options {
	return Options{
		Steps:  1000,
		Lambda: 1e-4,
		Logger: logrus.StandardLogger(),
	}
}

// Summary reports what a completed run did.
type Summary struct {
	// Classes are the trained class names in model (discovery) order.
	Classes []string
	// Steps is the number of iterations performed.
	Steps int
	// SkippedSamples counts all-zero draws that could not be trained on.
	SkippedSamples uint64
	// UpdatedVectors counts pair-vector updates across the whole run.
	UpdatedVectors uint64
}
