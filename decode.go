package ilint

// Decode reads one encoding from the front of src and returns the value and
// the number of bytes consumed. Bytes past the encoding are ignored.
//
// It returns ErrInsufficientBuffer if src is empty or shorter than the size
// announced by its header, and ErrOverflow if a 9-byte encoding carries a
// payload above 0xFFFF_FFFF_FFFF_FF07.
func Decode(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrInsufficientBuffer
	}
	n := DecodedSize(src[0])
	if len(src) < n {
		return 0, 0, ErrInsufficientBuffer
	}
	if n == 1 {
		return uint64(src[0]), 1, nil
	}
	var t uint64
	for _, b := range src[1:n] {
		t = t<<8 | uint64(b)
	}
	if t > maxTrailing {
		return 0, 0, ErrOverflow
	}
	return t + Base, n, nil
}
