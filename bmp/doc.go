// Package bmp decodes just enough of a Windows bitmap to stream its pixel
// bytes as a feature vector, without ever decoding or buffering the image.
//
// What:
//
//   - ProbeMagic cheaply rejects files that do not start with the BM tag.
//   - ReadGeometry parses and validates the DIB header fields the trainer
//     and classifier need: width, height (sign = row storage order) and
//     bits per pixel.
//   - Scanner streams the pixel-channel bytes of one image in top-to-bottom
//     raster order, one row at a time, regardless of whether the file stores
//     rows bottom-up (positive height) or top-down (negative height).
//     Row padding bytes are never emitted.
//   - NormDivisor computes the L2 norm of all channel bytes in one pass.
//
// Why:
//
//	The model treats every pixel-channel byte of an image as one feature
//	dimension. Feature vectors can be large, so they are never materialized:
//	Scanner holds at most one row in memory and the callers consume it in
//	lock-step with the on-disk weight vectors.
//
// Constraints:
//
//   - Only uncompressed, whole-byte channel layouts are accepted
//     (8/16/24/32 bits per pixel). Palette-indexed and compressed inputs
//     fail the recorded-size cross-check and are rejected.
//   - Header integers are read little-endian, as the format defines them;
//     the model store separately asserts a little-endian host so the two
//     layers agree.
//
// Errors:
//
//   - ErrBadMagic: file does not begin with the BM signature.
//   - ErrBadGeometry: zero width or height, or an undersized DIB header.
//   - ErrUnsupportedDepth: bits per pixel outside the supported set.
//   - ErrSizeMismatch: recorded file size disagrees with the geometry
//     (the signature of a compressed or truncated file).
package bmp
