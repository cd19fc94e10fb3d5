// Package modelfile defines and implements the on-disk format of a trained
// one-vs-one linear model, treating the file itself as the weight array.
//
// What:
//
//   - CreateEmpty writes a fresh model: magic, float width, image geometry,
//     class count, class-name table, then a zero-initialized block of one
//     weight vector per unordered class pair.
//   - ReadHeader parses everything up to the vector block and locates it.
//   - PairIndex / VectorOffset are the pure triangular-index functions every
//     weight access goes through; the arithmetic lives here once.
//   - Store gives seek-based random read/write access to individual weights
//     and to row-sized spans; it is the training backend and mutates the
//     file in place.
//   - MappedStore serves the same reads from a read-only memory mapping,
//     the classification backend.
//
// Layout (all integers native byte order, doubles native IEEE-754):
//
//	magic "NSVM" (4) · doubleSize u8 · width u32 · height i32 ·
//	bitsPerPixel u16 · numClasses u64 ·
//	numClasses × { nameLen u8 · name } ·
//	numClasses·(numClasses-1)/2 vectors × vectorLen float64
//
// Vectors are ordered lexicographically by pair: (0,1), (0,2), …, (1,2), ….
// Every weight of pair (pos,neg) lives at a byte offset computable without
// scanning, which is what lets the trainer update weights it never holds
// in memory.
//
// Portability:
//
//	The format is a single-host artifact, not an interchange format.
//	CheckHost asserts the preconditions once (little-endian, 8-byte
//	float64) and readers verify the recorded doubleSize, turning silent
//	incompatibility into an explicit error.
//
// Errors:
//
//   - ErrBadModelMagic, ErrFloatWidth, ErrTooFewClasses, ErrNameLength:
//     malformed or incompatible model files.
//   - ErrHostEndianness: unsupported host, nothing can be read or written.
//   - ErrVectorRange: pair or dimension index outside the declared block.
//   - ErrReadOnlyStore: write attempted through a MappedStore.
package modelfile
