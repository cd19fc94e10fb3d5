// Package classifier labels an unknown bitmap with a trained one-vs-one
// model by majority vote over every stored pair vector.
//
// What:
//
//	Classify checks the image's geometry against the model's, normalizes
//	the image by its own L2 norm, then streams it against each of the
//	numClasses·(numClasses-1)/2 pair vectors in canonical order. A positive
//	dot product is a vote for the pair's lower-indexed class, otherwise the
//	higher-indexed one; an all-zero image yields zero dot products and so
//	always votes for the higher index. The class (or classes, on a tie)
//	with the most votes wins.
//
// The reported confidence is the winners' share of the maximum possible
// votes:
//
//	numWinners·maxVotes / (numWinners·(numClasses-1)) · 100
//
// The model is mapped read-only; classification never mutates it, so two
// runs over the same file and image produce identical results.
//
// Errors:
//
//   - ErrGeometryMismatch: image and model disagree on width, height
//     magnitude or bits-per-pixel.
package classifier
