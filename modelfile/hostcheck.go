package modelfile

import (
	"encoding/binary"
	"unsafe"
)

// CheckHost asserts the portability preconditions of the native-byte-order
// format: a little-endian host with 8-byte IEEE-754 doubles. Call it once
// at startup; Store constructors call it again so library users cannot
// bypass the check.
func CheckHost() error {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) != 1 {
		return ErrHostEndianness
	}
	if unsafe.Sizeof(float64(0)) != DoubleSize {
		return ErrFloatWidth
	}

	return nil
}
