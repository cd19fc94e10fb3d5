package modelfile

// NumPairs returns the number of unordered class pairs, and therefore the
// number of weight vectors a model with numClasses classes stores.
func NumPairs(numClasses uint64) uint64 {
	return numClasses * (numClasses - 1) / 2
}

// PairIndex maps the pair (pos, neg), pos < neg < numClasses, to its linear
// vector index in the triangular block. Vectors are laid out in
// lexicographic pair order: all pairs with pos=0 first, then pos=1, etc.
//
// The closed form collapses the row-sum Σ_{k<pos}(numClasses-1-k):
//
//	pos·(numClasses-1) - pos·(pos-1)/2 + (neg-pos-1)
//
// Callers must uphold pos < neg < numClasses; Store methods range-check the
// resulting index against NumPairs.
func PairIndex(pos, neg, numClasses uint64) uint64 {
	return pos*(numClasses-1) - pos*(pos-1)/2 + (neg - pos - 1)
}

// VectorOffset returns the absolute byte offset of weight dim of the vector
// for pair (pos, neg), given the block base offset and per-pair vector
// length from the header.
func VectorOffset(pos, neg, numClasses uint64, base int64, vectorLen, dim uint64) int64 {
	return base + int64((PairIndex(pos, neg, numClasses)*vectorLen+dim)*weightSize)
}
