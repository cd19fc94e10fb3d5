// Package nsvm is the root of an out-of-core, one-vs-one linear image
// classifier: pairwise linear SVMs trained with a Pegasos-style stochastic
// sub-gradient method directly against a directory tree of bitmaps, with
// every model weight living in a binary file rather than in memory.
//
// The defining property is that no feature vector, image buffer or weight
// vector is ever fully materialized: samples stream row by row from their
// source bitmaps and weights stream through row-sized spans of the model
// file at explicit byte offsets.
//
// Subpackages:
//
//	bmp/        — bitmap header validation and raster-order byte streaming
//	modelfile/  — the on-disk model format, offset arithmetic, weight stores
//	corpus/     — class discovery, geometry validation, random sample draws
//	trainer/    — the Pegasos training loop over on-disk weights
//	classifier/ — one-vs-one majority voting against a trained model
//	cmd/nsvm/   — the command-line front end
//
// Typical use:
//
//	nsvm ./corpus model.nsvm        # corpus/<class>/*.bmp → model.nsvm
//	nsvm unknown.bmp model.nsvm     # prints confidence and winning class(es)
package nsvm
