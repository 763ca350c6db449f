// Package textrep implements a small text representation for lists of
// ILInt values and converts it to and from the binary encoding.
//
// A document is a sequence of integer literals separated by whitespace or
// commas. Literals are decimal or 0x-prefixed hex, may contain underscores
// and may carry a suffix: u for unsigned (the default) or i for signed.
// A negative literal without a suffix is signed. Signed values are mapped
// with ilint.EncodeSign before encoding.
//
//	# a few values
//	0, 247, 0x021B, 1_000_000
//	-1 42i 0xFFFF_FFFF_FFFF_FFFFu
package textrep

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dadrian/ilint"
)

// Value is one integer of a document.
type Value struct {
	// Bits is the unsigned value handed to the codec. For signed values it
	// is the sign-mapped form.
	Bits   uint64
	Signed bool
}

// Unsigned returns an unsigned Value.
func Unsigned(v uint64) Value { return Value{Bits: v} }

// Signed returns a signed Value.
func Signed(v int64) Value { return Value{Bits: ilint.EncodeSign(v), Signed: true} }

// Int returns the signed interpretation of v.
func (v Value) Int() int64 { return ilint.DecodeSign(v.Bits) }

// String renders v as a literal that Parse reads back to the same Value.
func (v Value) String() string {
	if !v.Signed {
		return strconv.FormatUint(v.Bits, 10)
	}
	i := v.Int()
	if i < 0 {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatInt(i, 10) + "i"
}

// Parse reads a document into values.
func Parse(src []byte) ([]Value, error) {
	lx := newLexer(src)
	var out []Value
	for lx.next(); lx.cur.kind != tokEOF; lx.next() {
		switch lx.cur.kind {
		case tokComma:
			continue
		case tokIllegal:
			return nil, fmt.Errorf("textrep: at %d: %s", lx.cur.off, lx.cur.lit)
		case tokInt:
			v, err := literalValue(lx.cur)
			if err != nil {
				return nil, fmt.Errorf("textrep: at %d: %w", lx.cur.off, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func literalValue(tok token) (Value, error) {
	if tok.neg && tok.suffix == 'u' {
		return Value{}, errors.New("negative unsigned literal")
	}
	mag, err := strconv.ParseUint(tok.lit, tok.intBase, 64)
	if err != nil {
		return Value{}, err
	}
	if tok.suffix != 'i' && !tok.neg {
		return Unsigned(mag), nil
	}
	if tok.neg {
		if mag > math.MaxInt64+1 {
			return Value{}, fmt.Errorf("literal -%s overflows int64", tok.lit)
		}
		// -(1<<63) wraps back onto itself, which is math.MinInt64.
		return Signed(-int64(mag)), nil
	}
	if mag > math.MaxInt64 {
		return Value{}, fmt.Errorf("literal %s overflows int64", tok.lit)
	}
	return Signed(int64(mag)), nil
}

// EncodeValues returns the concatenated encodings of vs.
func EncodeValues(vs []Value) ([]byte, error) {
	var total int
	for _, v := range vs {
		total += ilint.EncodedSize(v.Bits)
	}
	out := make([]byte, total)
	var off int
	for _, v := range vs {
		n, err := ilint.Encode(v.Bits, out[off:])
		if err != nil {
			return nil, err
		}
		off += n
	}
	return out, nil
}

// EncodeBytes parses a document and returns its binary encoding.
func EncodeBytes(src []byte) ([]byte, error) {
	vs, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return EncodeValues(vs)
}

// Encode reads a document from r and writes its binary encoding to w.
func Encode(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := EncodeBytes(src)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// DecodeBytes decodes consecutive encodings filling b. When signed is set
// every value is treated as sign-mapped.
//
// On failure it returns the values decoded so far and an *ilint.Error whose
// Offset is the start of the failing encoding.
func DecodeBytes(b []byte, signed bool) ([]Value, error) {
	var out []Value
	for off := 0; off < len(b); {
		v, n, err := ilint.Decode(b[off:])
		if err != nil {
			return out, decodeError(b, off, err)
		}
		out = append(out, Value{Bits: v, Signed: signed})
		off += n
	}
	return out, nil
}

func decodeError(b []byte, off int, err error) error {
	var kind ilint.ErrorKind
	if !errors.As(err, &kind) {
		return err
	}
	e := &ilint.Error{Offset: int64(off), Kind: kind}
	switch kind {
	case ilint.ErrInsufficientBuffer:
		e.Detail = fmt.Sprintf("header %#02x needs %d bytes, have %d", b[off], ilint.DecodedSize(b[off]), len(b)-off)
	case ilint.ErrOverflow:
		e.Detail = "value exceeds 2^64-1"
	}
	return e
}

// Format renders vs one per line.
func Format(vs []Value) string {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(v.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
