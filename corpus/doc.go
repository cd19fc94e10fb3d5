// Package corpus indexes a two-level directory tree of training images:
// each non-hidden subdirectory of the root is a class, each non-hidden
// regular file with a bitmap signature inside it is a sample.
//
// What:
//
//   - DiscoverClasses walks the root, validates every class directory and
//     returns the survivors in directory order, the order that fixes class
//     indices in the model file. Defective classes (empty, internally
//     inconsistent, off-geometry) are skipped and reported, not fatal;
//     fewer than two survivors is fatal.
//   - CountSamples counts the usable samples of one class.
//   - ValidateClassDims asserts all samples of a class share one geometry.
//   - PickRandomSample draws one sample uniformly using OS entropy with
//     rejection sampling, so no modulo bias.
//
// Hidden entries (leading dot) are ignored at both levels.
//
// Errors:
//
//   - ErrTooFewClasses: fewer than two usable classes survived discovery.
//   - ErrEmptyClass: a class directory holds no usable sample.
//   - ErrGeometryMismatch: samples within a class, or classes within the
//     corpus, disagree on width, height magnitude or depth.
package corpus
