package ilint

import (
	"math"
	"math/bits"
)

// Base is the first header value of a multi-byte encoding. All values
// smaller than Base are encoded as a single byte.
const Base = 0xF8

// MaxSize is the largest number of bytes an encoding can occupy.
const MaxSize = 9

// maxTrailing is the largest payload for which Base + payload fits in a
// uint64 (0xFFFF_FFFF_FFFF_FF07).
const maxTrailing = math.MaxUint64 - Base

// EncodedSize returns the number of bytes needed to encode v, in [1, MaxSize].
func EncodedSize(v uint64) int {
	if v < Base {
		return 1
	}
	// The payload is fixed-width: one byte minimum, even for v == Base.
	n := (bits.Len64(v-Base) + 7) >> 3
	if n == 0 {
		n = 1
	}
	return n + 1
}

// DecodedSize returns the total size of an encoding, header included,
// given only its header byte.
func DecodedSize(header byte) int {
	if header < Base {
		return 1
	}
	return int(header-Base) + 2
}
