// Package trainer drives Pegasos-style stochastic sub-gradient training of
// the one-vs-one linear model, with every weight living on disk.
//
// What:
//
//	Train discovers the corpus, creates a fresh model file and runs a fixed
//	number of steps. Each step visits every class once: draw one random
//	sample, normalize it by its own L2 norm, and update each of the
//	numClasses-1 pair vectors the class participates in. The class is the
//	positive side of a pair when its index is the smaller one, negative
//	otherwise.
//
// Update rule, per pair, with s = role sign and x_d = byte_d/normDivisor:
//
//	dot < 1  (margin violated):  w_d -= rate·(λ·w_d - s·x_d)
//	dot ≥ 1  (margin satisfied): w_d -= rate·λ·w_d
//
// where dot = s·Σ w_d·x_d and rate = 1/√(step+1).
//
// The loop always runs to completion, there is no convergence test. An
// all-zero sample has no direction to learn from and is skipped, counted
// in the Summary.
//
// Out-of-core discipline: sample bytes are streamed row by row from the
// image file and weights are streamed through row-sized spans of the model
// store, in lock-step. The model file is reopened for every drawn sample
// rather than held across the run; there is exactly one writer and no
// concurrent reader, so this costs only syscalls.
//
// Errors:
//
//   - ErrNoSteps: Options.Steps is not positive.
//   - ErrBadLambda: Options.Lambda is negative or NaN.
//
// Corpus and I/O failures propagate from the corpus, bmp and modelfile
// packages; training is fail-fast, an interrupted run leaves the model
// with whatever weights were last written.
package trainer
