package ilint

// Encode writes the encoding of v into dst and returns the number of bytes
// written. dst must have at least EncodedSize(v) bytes; otherwise Encode
// returns ErrInsufficientBuffer without touching dst. Bytes past the
// encoding are never written.
func Encode(v uint64, dst []byte) (int, error) {
	n := EncodedSize(v)
	if len(dst) < n {
		return 0, ErrInsufficientBuffer
	}
	if n == 1 {
		dst[0] = byte(v)
		return 1, nil
	}
	dst[0] = byte(Base + n - 2)
	// Big-endian, exactly n-1 bytes, leading zeros included.
	t := v - Base
	for i := n - 1; i > 0; i-- {
		dst[i] = byte(t)
		t >>= 8
	}
	return n, nil
}
