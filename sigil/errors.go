package sigil

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol reports an encode-time unit with no table entry.
	ErrUnknownSymbol = errors.New("sigil: unknown symbol")
	// ErrCodeOutOfRange reports a decode-time code outside [0,255] or an
	// undefined table slot.
	ErrCodeOutOfRange = errors.New("sigil: code out of range")
	// ErrInvalidFrequency reports a negative, NaN, or infinite frequency
	// passed to a derived-quantity computation.
	ErrInvalidFrequency = errors.New("sigil: invalid frequency")
)

// EncodeError reports the first unencodable unit of an Encode call. It
// unwraps to ErrUnknownSymbol.
type EncodeError struct {
	Unit   string // the offending character or byte
	Index  int    // zero-indexed unit position in the input
	Offset int    // byte offset of the unit
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("sigil: unknown symbol %q at unit %d (byte %d)", e.Unit, e.Index, e.Offset)
}

func (e *EncodeError) Unwrap() error {
	return ErrUnknownSymbol
}
