package corpus

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// randUint64n returns a uniform value in [0, n) backed by the OS entropy
// source. Rejection sampling removes the modulo bias a bare `entropy % n`
// would carry: draws below the residue threshold are re-drawn.
func randUint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.New("corpus: zero range for random draw")
	}
	if n&(n-1) == 0 {
		v, err := randUint64()

		return v & (n - 1), err
	}

	// thresh = 2^64 mod n, computed in uint64 arithmetic.
	thresh := -n % n
	for {
		v, err := randUint64()
		if err != nil {
			return 0, err
		}
		if v >= thresh {
			return v % n, nil
		}
	}
}

// randUint64 reads one 8-byte word from the OS entropy source.
func randUint64() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "corpus: read entropy")
	}

	return binary.NativeEndian.Uint64(buf[:]), nil
}
