// Command nsvm trains and applies a one-vs-one linear image classifier.
//
// Usage:
//
//	nsvm <corpus directory> <output model file>   train
//	nsvm <bitmap file> <existing model file>      classify
//
// The first positional argument selects the mode: a directory trains a new
// model from the class subdirectories inside it, a regular file classifies
// that image against an existing model. Diagnostics go to stderr; the
// classification result (a percentage line, then one line per winning
// class) goes to stdout. Any failure exits non-zero.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nkeoboupha/svm-image-classifier/classifier"
	"github.com/nkeoboupha/svm-image-classifier/modelfile"
	"github.com/nkeoboupha/svm-image-classifier/trainer"
)

type options struct {
	Steps   int     `long:"steps" default:"1000" description:"number of training iterations"`
	Lambda  float64 `long:"lambda" default:"0.0001" description:"Pegasos regularization constant"`
	Verbose bool    `short:"v" long:"verbose" description:"enable debug logging"`

	Args struct {
		Path  string `positional-arg-name:"PATH" required:"yes" description:"corpus directory (train) or bitmap file (classify)"`
		Model string `positional-arg-name:"MODEL" required:"yes" description:"model file to write (train) or read (classify)"`
	} `positional-args:"yes"`
}

type mode int

const (
	modeTrain mode = iota
	modeClassify
)

// resolveMode maps the two positional paths onto a run mode and enforces
// the argument rules: the first path must be a directory (train) or a
// regular file (classify); the second path may not exist as anything but a
// regular file, and in classify mode it must exist.
func resolveMode(path, model string) (mode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrap(err, "getting status of first argument")
	}

	var m mode
	switch {
	case info.IsDir():
		m = modeTrain
	case info.Mode().IsRegular():
		m = modeClassify
	default:
		return 0, errors.New("first argument is neither a regular file nor a directory")
	}

	minfo, err := os.Stat(model)
	switch {
	case err == nil && !minfo.Mode().IsRegular():
		return 0, errors.New("second argument already exists, but is not a regular file")
	case err != nil && m == modeClassify:
		return 0, errors.New("first argument is a regular file, but the second argument does not exist")
	}

	return m, nil
}

func run(argv []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] PATH MODEL"
	if _, err := parser.ParseArgs(argv); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}

		return 1 // go-flags already printed the parse error
	}

	logrus.SetOutput(os.Stderr)
	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log := logrus.WithField("app", "nsvm")

	if err := modelfile.CheckHost(); err != nil {
		log.WithError(err).Error("host precondition failed")

		return 1
	}

	m, err := resolveMode(opts.Args.Path, opts.Args.Model)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		parser.WriteHelp(os.Stderr)

		return 1
	}

	switch m {
	case modeTrain:
		tOpts := trainer.DefaultOptions()
		tOpts.Steps = opts.Steps
		tOpts.Lambda = opts.Lambda
		tOpts.Logger = log
		if _, err := trainer.Train(opts.Args.Path, opts.Args.Model, tOpts); err != nil {
			log.WithError(err).Error("training failed")

			return 1
		}

	case modeClassify:
		cOpts := classifier.DefaultOptions()
		cOpts.Logger = log
		res, err := classifier.Classify(opts.Args.Path, opts.Args.Model, cOpts)
		if err != nil {
			log.WithError(err).Error("classification failed")

			return 1
		}
		fmt.Print(res.String())
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
