package textrep

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex reads hex-encoded bytes. Groups may be separated by whitespace,
// commas or colons and may carry a 0x prefix: "f9 01 23", "0xF9,0x01,0x23",
// "f9:01:23" and "f90123" all read as the same three bytes.
func ParseHex(src []byte) ([]byte, error) {
	fields := strings.FieldsFunc(string(src), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',' || r == ':'
	})
	var out []byte
	for _, f := range fields {
		g := strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if g == "" {
			return nil, fmt.Errorf("textrep: hex group %q has no digits", f)
		}
		b, err := hex.DecodeString(g)
		if err != nil {
			return nil, fmt.Errorf("textrep: hex group %q: %w", f, err)
		}
		out = append(out, b...)
	}
	return out, nil
}
