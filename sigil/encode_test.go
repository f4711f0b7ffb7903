package sigil

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================
// Round-Trip
// ============================================================

func TestEncode_RoundTripEverySymbol(t *testing.T) {
	tbl := Default()
	for code := 0; code < TableSize; code++ {
		sym, _ := tbl.SymbolAt(code)
		msg, err := tbl.Encode(sym.Text)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", sym.Text, err)
		}
		if len(msg) != 1 {
			t.Fatalf("Encode(%q): expected 1 symbol, got %d", sym.Text, len(msg))
		}
		if msg[0].Code != sym.Code {
			t.Errorf("Encode(%q): code %d, want %d", sym.Text, msg[0].Code, sym.Code)
		}
		if msg.Text() != sym.Text {
			t.Errorf("Round trip of %q gave %q", sym.Text, msg.Text())
		}
	}
}

func TestEncode_RoundTripConcatenations(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		"The quick brown fox jumps over the lazy dog 0123456789",
		"naïve café",
		"αβγ ΔΕΖ ∞√≠",
		"a-->b<--c==>d<==e",
		"[=][#][@][*]<<<>>>",
		"price ≈ ∫∂x · 12½",
		"<<<payload>>>",
	}

	tbl := Default()
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			msg, err := tbl.Encode(input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if got := msg.Text(); got != input {
				t.Errorf("Round trip gave %q, want %q", got, input)
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	msg, err := Default().Encode("")
	if err != nil {
		t.Fatalf("Encode(\"\") failed: %v", err)
	}
	if len(msg) != 0 {
		t.Errorf("Expected empty message, got %d symbols", len(msg))
	}
}

// ============================================================
// Maximal Munch
// ============================================================

func TestEncode_MaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		codes []int // expected code sequence
	}{
		// A token followed by a standalone character must stay one symbol.
		{"-->x", []int{252, 'x' - 0x20}},
		{"x-->", []int{'x' - 0x20, 252}},
		{"[=]", []int{246}},
		{"<==>", []int{255, '>' - 0x20}}, // <== wins over < = =, then bare >
		{"<<<<", []int{250, '<' - 0x20}},
		// Partial token prefixes fall back to single characters.
		{"<<", []int{'<' - 0x20, '<' - 0x20}},
		{"--", []int{'-' - 0x20, '-' - 0x20}},
		{"[=", []int{'[' - 0x20, '=' - 0x20}},
		{"==", []int{'=' - 0x20, '=' - 0x20}},
		// Adjacent tokens.
		{"-->-->", []int{252, 252}},
		{"<<<>>>", []int{250, 251}},
	}

	tbl := Default()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			msg, err := tbl.Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(msg) != len(tt.codes) {
				t.Fatalf("Expected %d symbols, got %d (%v)", len(tt.codes), len(msg), msg)
			}
			for i, want := range tt.codes {
				if int(msg[i].Code) != want {
					t.Errorf("Symbol %d: code %d, want %d", i, msg[i].Code, want)
				}
			}
			if msg.Text() != tt.input {
				t.Errorf("Round trip gave %q", msg.Text())
			}
		})
	}
}

// ============================================================
// Unknown Symbols
// ============================================================

func TestEncode_UnknownSymbolPosition(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		index  int // zero-indexed unit position
		offset int // byte offset
	}{
		{"control at start", "\x01abc", 0, 0},
		{"control after text", "ab\x01", 2, 2},
		{"control after token", "-->\x07", 1, 3},
		{"unassigned rune", "ab€cd", 2, 2},
		{"after multibyte char", "ÿ\x02", 1, 2},
		{"invalid utf8 byte", "a\xffb", 1, 1},
	}

	tbl := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tbl.Encode(tt.input)
			if msg != nil {
				t.Errorf("Expected no partial output, got %d symbols", len(msg))
			}
			if !errors.Is(err, ErrUnknownSymbol) {
				t.Fatalf("Expected ErrUnknownSymbol, got %v", err)
			}
			var encErr *EncodeError
			if !errors.As(err, &encErr) {
				t.Fatalf("Expected *EncodeError, got %T", err)
			}
			if encErr.Index != tt.index {
				t.Errorf("Index: got %d, want %d", encErr.Index, tt.index)
			}
			if encErr.Offset != tt.offset {
				t.Errorf("Offset: got %d, want %d", encErr.Offset, tt.offset)
			}
		})
	}
}

// ============================================================
// Code-Sequence Decode
// ============================================================

func TestDecode_Valid(t *testing.T) {
	tbl := Default()
	msg, err := tbl.Decode([]byte{'h' - 0x20, 'i' - 0x20, 252})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := msg.Text(); got != "hi-->" {
		t.Errorf("Decoded %q, want %q", got, "hi-->")
	}
}

func TestDecode_InvertsCodes(t *testing.T) {
	// Message.Codes output feeds Decode directly, no conversion.
	tbl := Default()
	msg, err := tbl.Encode("a-->ÿ∞")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := tbl.Decode(msg.Codes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := decoded.Text(); got != "a-->ÿ∞" {
		t.Errorf("Round trip gave %q", got)
	}
}

func TestDecode_UndefinedSlot(t *testing.T) {
	var holed Table
	holed.byCode[0] = Symbol{Code: 0, Text: "x"}

	msg, err := holed.Decode([]byte{0, 1})
	if msg != nil {
		t.Error("Expected no partial output")
	}
	if !errors.Is(err, ErrCodeOutOfRange) {
		t.Errorf("Expected ErrCodeOutOfRange, got %v", err)
	}
}

func TestMessage_Codes(t *testing.T) {
	tbl := Default()
	msg, err := tbl.Encode("ok")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	codes := msg.Codes()
	if len(codes) != 2 || codes[0] != 'o'-0x20 || codes[1] != 'k'-0x20 {
		t.Errorf("Unexpected codes: %v", codes)
	}
}

// ============================================================
// Benchmarks
// ============================================================

func BenchmarkEncode_Text(b *testing.B) {
	tbl := Default()
	input := strings.Repeat("The quick brown fox --> jumps <== over ∞ ", 32)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Encode(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMessage_Text(b *testing.B) {
	tbl := Default()
	msg, err := tbl.Encode(strings.Repeat("round-trip --> payload ", 64))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = msg.Text()
	}
}
