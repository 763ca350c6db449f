package ilint

// EncodeSign maps a signed value onto the unsigned domain so that small
// magnitudes of either sign stay small: 0, -1, 1, -2, ... become 0, 1, 2,
// 3, ... Nonnegative values map to even results, negative ones to odd.
func EncodeSign(v int64) uint64 {
	u := uint64(v) << 1
	if v < 0 {
		return ^u
	}
	return u
}

// DecodeSign is the inverse of EncodeSign.
func DecodeSign(v uint64) int64 {
	if v&1 == 0 {
		return int64(v >> 1)
	}
	return int64(^(v >> 1))
}
