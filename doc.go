// Package ilint implements the ILInt variable-length encoding for 64-bit
// unsigned integers.
//
// Values below Base (0xF8) encode as a single byte holding the value itself.
// Larger values encode as a header byte followed by 1 to 8 big-endian bytes
// carrying value - Base. The header alone determines the total size, so a
// reader can learn how many bytes to fetch from the first byte:
//
//	0x00..0xF7  value, 1 byte
//	0xF8        2 bytes
//	0xF9        3 bytes
//	...
//	0xFF        9 bytes
//
// Signed integers are mapped onto the unsigned domain with EncodeSign and
// recovered with DecodeSign. The codec never applies the mapping on its own.
//
// All functions are pure, operate on caller-owned slices and never allocate.
package ilint
