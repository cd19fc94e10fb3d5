package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrGeometryMismatch indicates the image does not live in the feature
// space the model was trained on.
var ErrGeometryMismatch = errors.New("classifier: image geometry does not match model")

// Options configures classification.
type Options struct {
	// Logger receives progress output; nil silences it via the default.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// Result is the outcome of one classification.
type Result struct {
	// Votes holds one tally per class, indexed in model class order.
	Votes []int
	// Winners are the names of the class(es) with the maximum tally;
	// ties produce more than one.
	Winners []string
	// Percent is the winners' share of the maximum possible votes, 0..100.
	Percent float64
}

// String renders the process-interface output: a percentage line followed
// by one line per winning class name.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.2f%%\n", r.Percent)
	for _, name := range r.Winners {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	return b.String()
}
