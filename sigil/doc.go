// Package sigil implements the SIGIL symbol alphabet, a fixed 256-entry
// codec between textual characters and one-byte codes, together with the
// pure numeric checks layered on its per-symbol attributes.
//
// # Alphabet
//
// The alphabet is a closed, ordered, bijective table of 256 symbols:
//
//   - codes 0-94:    printable ASCII, ' ' through '~', in natural order
//   - codes 95-190:  Latin-1 supplement, U+00A0 through U+00FF
//   - codes 191-245: Greek letters plus six mathematical signs
//   - codes 246-255: ten reserved multi-character tokens
//
// Each symbol carries three table-assigned attributes: a positive frequency,
// a harmonic amplitude band, and an alternation state. The table is built
// once, verified structurally (bijection, totality, prefix-free tokens), and
// never mutated; every operation is safe for concurrent use without locking.
//
// # Reserved Tokens
//
// The tail of the table holds three token families, each token occupying
// exactly one code despite rendering as three characters:
//
//	seals:  [=] [#] [@] [*]
//	gates:  <<< >>>
//	flows:  --> <-- ==> <==
//
// The encoder scans maximal-munch: at every position the longest reserved
// token is tried before a single character is consumed, so "-->" is always
// one symbol even though '-' and '>' stand alone elsewhere in the table.
//
// # Encoding
//
// Encode maps text to an ordered Message of symbols and aborts on the first
// unit with no table entry, reporting its zero-indexed unit position and
// byte offset. Message.Text reverses the mapping, so for any text drawn
// from the alphabet:
//
//	msg, _ := sigil.Default().Encode(text)
//	msg.Text() == text
//
// # Derived Quantities
//
// Constants.MassEquivalent computes the mass-like quantity
// (C1·frequency)/(C2²) from a symbol frequency, and Conservation.Check
// tests a three-way in/out/fee balance within a tolerance. Both are pure
// functions over injected constants; neither touches the table.
package sigil
