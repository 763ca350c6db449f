package ilint

import "fmt"

// ErrorKind classifies encoding/decoding errors. It implements error so the
// codec can return a kind directly.
type ErrorKind int

const (
	// ErrInsufficientBuffer means a source or destination slice is shorter
	// than the encoding requires.
	ErrInsufficientBuffer ErrorKind = iota + 1
	// ErrOverflow means a 9-byte encoding carries a value above 2^64-1.
	ErrOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInsufficientBuffer:
		return "insufficient buffer"
	case ErrOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string { return "ilint: " + k.String() }

// Error carries offset and classification for callers decoding inside a
// larger buffer.
type Error struct {
	Offset int64
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail == "" {
		return fmt.Sprintf("ilint: %s at %d", e.Kind.String(), e.Offset)
	}
	return fmt.Sprintf("ilint: %s at %d: %s", e.Kind.String(), e.Offset, e.Detail)
}

// Unwrap exposes the kind so errors.Is(err, ErrOverflow) matches.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}
