package sigil

import (
	"crypto/sha256"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// TableSize is the number of codes in the alphabet.
const TableSize = 256

// DefaultFloor is the v1 base frequency. Symbol frequencies scale linearly
// above it: frequency(code) = floor * (1 + code/256).
const DefaultFloor = 432.0

// specialTokens lists the reserved multi-character tokens in table order:
// four seals, two gates, four flows. Each occupies exactly one code,
// starting at TableSize-len(specialTokens).
var specialTokens = []string{
	"[=]", "[#]", "[@]", "[*]",
	"<<<", ">>>",
	"-->", "<--", "==>", "<==",
}

// Table is the immutable symbol alphabet: a total bijection between codes
// [0,255] and characters/tokens, with per-symbol attributes. Build it with
// NewTable or share the verified v1 instance from Default. A Table is never
// mutated after construction and is safe for concurrent use.
type Table struct {
	byCode [TableSize]Symbol
	byText map[string]Symbol
	tokens []string // reserved tokens, longest first
	floor  float64
}

// Option adjusts table construction.
type Option func(*Table)

// WithFloor overrides the base frequency used for attribute assignment.
func WithFloor(floor float64) Option {
	return func(t *Table) {
		t.floor = floor
	}
}

// NewTable builds the v1 alphabet and verifies its structural invariants:
// exactly 256 entries, non-empty texts, code/text bijection, and a
// prefix-free reserved-token set. A verification failure means the table
// definition itself is broken.
func NewTable(opts ...Option) (*Table, error) {
	t := &Table{
		byText: make(map[string]Symbol, TableSize),
		floor:  DefaultFloor,
	}
	for _, opt := range opts {
		opt(t)
	}

	if math.IsNaN(t.floor) || math.IsInf(t.floor, 0) || t.floor <= 0 {
		return nil, fmt.Errorf("sigil: floor frequency must be positive and finite, got %v", t.floor)
	}

	texts := tableTexts()
	if len(texts) != TableSize {
		return nil, fmt.Errorf("sigil: table defines %d entries, want %d", len(texts), TableSize)
	}

	for code, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("sigil: empty text at code %d", code)
		}
		if prev, dup := t.byText[text]; dup {
			return nil, fmt.Errorf("sigil: text %q assigned to both code %d and code %d", text, prev.Code, code)
		}
		sym := Symbol{
			Code:      uint8(code),
			Text:      text,
			Frequency: t.floor * (1 + float64(code)/TableSize),
			Amplitude: uint8(code / 32),
			State:     uint8(code % 3),
		}
		t.byCode[code] = sym
		t.byText[text] = sym
	}

	if err := verifyPrefixFree(specialTokens); err != nil {
		return nil, err
	}

	// Longest first so Encode's token match is maximal-munch even if a
	// future table revision mixes token lengths.
	t.tokens = append([]string(nil), specialTokens...)
	sort.SliceStable(t.tokens, func(i, j int) bool {
		return len(t.tokens[i]) > len(t.tokens[j])
	})

	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared v1 table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable()
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// tableTexts enumerates the 256 character/token texts in code order.
func tableTexts() []string {
	texts := make([]string, 0, TableSize)

	// Codes 0-94: printable ASCII in natural order.
	for b := rune(0x20); b <= 0x7e; b++ {
		texts = append(texts, string(b))
	}

	// Codes 95-190: Latin-1 supplement.
	for r := rune(0x00a0); r <= 0x00ff; r++ {
		texts = append(texts, string(r))
	}

	// Codes 191-245: Greek capitals (U+03A2 is unassigned), Greek smalls,
	// then six mathematical signs.
	for r := rune(0x0391); r <= 0x03a9; r++ {
		if r == 0x03a2 {
			continue
		}
		texts = append(texts, string(r))
	}
	for r := rune(0x03b1); r <= 0x03c9; r++ {
		texts = append(texts, string(r))
	}
	texts = append(texts, "∂", "∞", "∫", "√", "≈", "≠")

	// Codes 246-255: reserved tokens.
	texts = append(texts, specialTokens...)

	return texts
}

// verifyPrefixFree rejects token sets where one token is a prefix of
// another; maximal munch is only unambiguous under this invariant.
func verifyPrefixFree(tokens []string) error {
	for i, a := range tokens {
		if len(a) < 2 {
			return fmt.Errorf("sigil: reserved token %q must be multi-character", a)
		}
		for j, b := range tokens {
			if i != j && strings.HasPrefix(b, a) {
				return fmt.Errorf("sigil: reserved token %q is a prefix of %q", a, b)
			}
		}
	}
	return nil
}

// SymbolFor returns the symbol whose text equals the given character or
// token. Fails with ErrUnknownSymbol when no entry matches.
func (t *Table) SymbolFor(text string) (Symbol, error) {
	sym, ok := t.byText[text]
	if !ok {
		return Symbol{}, fmt.Errorf("no symbol for %q: %w", text, ErrUnknownSymbol)
	}
	return sym, nil
}

// SymbolAt returns the symbol assigned to code. Fails with
// ErrCodeOutOfRange when code is outside [0,255] or the slot is undefined.
func (t *Table) SymbolAt(code int) (Symbol, error) {
	if code < 0 || code >= TableSize {
		return Symbol{}, fmt.Errorf("code %d outside [0,%d]: %w", code, TableSize-1, ErrCodeOutOfRange)
	}
	sym := t.byCode[code]
	if sym.Text == "" {
		return Symbol{}, fmt.Errorf("code %d undefined: %w", code, ErrCodeOutOfRange)
	}
	return sym, nil
}

// Len returns the number of defined symbols.
func (t *Table) Len() int {
	return len(t.byText)
}

// Symbols returns a copy of all entries in code order.
func (t *Table) Symbols() []Symbol {
	syms := make([]Symbol, TableSize)
	copy(syms, t.byCode[:])
	return syms
}

// Tokens returns a copy of the reserved token set in match order.
func (t *Table) Tokens() []string {
	return append([]string(nil), t.tokens...)
}

// Fingerprint returns a sha256 digest over the ordered code=text entries,
// identifying the table artifact version. Attributes are excluded:
// compatibility is defined in the lookup sense, same code to same text.
func (t *Table) Fingerprint() string {
	h := sha256.New()
	for code := 0; code < TableSize; code++ {
		fmt.Fprintf(h, "%d=%s\n", code, t.byCode[code].Text)
	}
	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}
