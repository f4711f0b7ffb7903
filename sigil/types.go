package sigil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Symbol is one entry of the fixed 256-entry alphabet.
type Symbol struct {
	Code      uint8   // unique code in [0,255]
	Text      string  // single character, or a reserved multi-character token
	Frequency float64 // positive, assigned at table construction
	Amplitude uint8   // harmonic band, 0-7
	State     uint8   // alternation index, 0-2
}

// String returns a debug representation of the symbol.
func (s Symbol) String() string {
	return fmt.Sprintf("%d=%q", s.Code, s.Text)
}

// IsToken reports whether the symbol renders as a reserved multi-character
// token rather than a single character. Character count, not byte count:
// most of the alphabet is multi-byte UTF-8 but still a single character.
func (s Symbol) IsToken() bool {
	return utf8.RuneCountInString(s.Text) > 1
}

// Message is an ordered sequence of symbols produced by Encode. Order is
// significant and corresponds to input unit order.
type Message []Symbol

// Text reconstructs the source text by concatenating each symbol's text in
// order. Total: every symbol carries a non-empty text by construction.
func (m Message) Text() string {
	var sb strings.Builder
	n := 0
	for _, sym := range m {
		n += len(sym.Text)
	}
	sb.Grow(n)
	for _, sym := range m {
		sb.WriteString(sym.Text)
	}
	return sb.String()
}

// Codes projects the message onto its code sequence.
func (m Message) Codes() []byte {
	codes := make([]byte, len(m))
	for i, sym := range m {
		codes[i] = sym.Code
	}
	return codes
}
