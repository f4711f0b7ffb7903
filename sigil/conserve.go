package sigil

import (
	"fmt"
	"math"
)

// Default constants for the v1 mass-equivalence formula. Both are
// configuration values, not algorithmic facts; substitute them through the
// Constants struct when tests need deterministic numbers.
const (
	DefaultC1 = 6.62607015e-34 // action quantum, J·s
	DefaultC2 = 2.99792458e8   // propagation ceiling, m/s
)

// DefaultTolerance bounds the conservation imbalance accepted by Check when
// the caller supplies no tighter value.
const DefaultTolerance = 1e-9

// Constants carries the two named constants of the derived-quantity
// formula: result = (C1 * frequency) / (C2 * C2).
type Constants struct {
	C1 float64 // multiplicative constant, numerator
	C2 float64 // squared constant, denominator
}

// DefaultConstants returns the v1 constants.
func DefaultConstants() Constants {
	return Constants{C1: DefaultC1, C2: DefaultC2}
}

// MassEquivalent computes the mass-like quantity (C1*frequency)/(C2²).
// Fails with ErrInvalidFrequency when frequency is negative, NaN, or
// infinite. Pure and lock-free: it touches only its argument and the
// receiver's immutable constants.
func (c Constants) MassEquivalent(frequency float64) (float64, error) {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency < 0 {
		return 0, fmt.Errorf("frequency %v: %w", frequency, ErrInvalidFrequency)
	}
	// !(x > 0) also catches NaN constants.
	if !(c.C1 > 0) || !(c.C2 > 0) || math.IsInf(c.C1, 0) || math.IsInf(c.C2, 0) {
		return 0, fmt.Errorf("sigil: constants must be positive and finite, got C1=%v C2=%v", c.C1, c.C2)
	}
	return c.C1 * frequency / (c.C2 * c.C2), nil
}

// Conservation is a claimed three-way accounting relationship over a
// transfer of symbols. Ephemeral: validator input only, never persisted.
type Conservation struct {
	In  float64
	Out float64
	Fee float64
}

// Verdict is the outcome of a conservation check.
type Verdict struct {
	Balanced bool
	Delta    float64 // In - (Out + Fee)
	Reason   string
}

// Check accepts when |In - (Out + Fee)| <= tolerance. A tolerance of zero
// demands exact floating-point equality. Negative amounts are permitted;
// domain-level non-negativity is a caller concern. The verdict reason
// carries the signed imbalance so callers can assert on magnitude. Check
// never errors: a negative or NaN tolerance yields a rejecting verdict
// naming it.
func (r Conservation) Check(tolerance float64) Verdict {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return Verdict{
			Delta:  math.NaN(),
			Reason: fmt.Sprintf("tolerance %v is not a non-negative number", tolerance),
		}
	}

	delta := r.In - (r.Out + r.Fee)
	if math.Abs(delta) <= tolerance {
		return Verdict{
			Balanced: true,
			Delta:    delta,
			Reason:   fmt.Sprintf("balanced within tolerance %g", tolerance),
		}
	}
	return Verdict{
		Delta:  delta,
		Reason: fmt.Sprintf("imbalance of %+g exceeds tolerance %g", delta, tolerance),
	}
}
