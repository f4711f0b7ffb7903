package sigil

import (
	"strings"
	"unicode/utf8"
)

// Encode scans text left to right, producing one symbol per consumed unit.
// At each position the longest reserved token starting there is matched
// first; otherwise exactly one character is consumed. The first unit with
// no table entry aborts the whole operation: the returned error is an
// *EncodeError carrying the zero-indexed unit position and byte offset, and
// no partial message is returned.
func (t *Table) Encode(text string) (Message, error) {
	// Unit count never exceeds byte count, so one allocation suffices.
	msg := make(Message, 0, len(text))

	pos := 0
	for index := 0; pos < len(text); index++ {
		unit := t.matchToken(text[pos:])
		if unit == "" {
			r, size := utf8.DecodeRuneInString(text[pos:])
			if r == utf8.RuneError && size == 1 {
				return nil, &EncodeError{Unit: text[pos : pos+1], Index: index, Offset: pos}
			}
			unit = text[pos : pos+size]
		}

		sym, ok := t.byText[unit]
		if !ok {
			return nil, &EncodeError{Unit: unit, Index: index, Offset: pos}
		}
		msg = append(msg, sym)
		pos += len(unit)
	}

	return msg, nil
}

// matchToken returns the longest reserved token at the head of s, or ""
// when none matches. Tokens are held longest-first.
func (t *Table) matchToken(s string) string {
	for _, tok := range t.tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

// Decode maps a code sequence back to its symbols, inverting
// Message.Codes. Fails with ErrCodeOutOfRange at the first undefined code,
// returning no partial output.
func (t *Table) Decode(codes []byte) (Message, error) {
	msg := make(Message, 0, len(codes))
	for _, code := range codes {
		sym, err := t.SymbolAt(int(code))
		if err != nil {
			return nil, err
		}
		msg = append(msg, sym)
	}
	return msg, nil
}
