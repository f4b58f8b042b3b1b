package types

import (
	"cosmossdk.io/math"
)

// perbillUnit is the fixed-point denominator: a Perbill expresses parts
// per one billion, so 1_000_000_000 represents 100%.
var perbillUnit = math.NewInt(1_000_000_000)

// Perbill is a fixed-point ratio in the closed range [0, 1_000_000_000],
// used throughout collator staking in place of floating point so that
// independent executors replaying the same inputs reach identical results.
type Perbill struct {
	Parts math.Int
}

// NewPerbill builds a Perbill from a raw parts-per-billion value.
func NewPerbill(parts int64) Perbill {
	return Perbill{Parts: math.NewInt(parts)}
}

// PerbillFromPercent converts a whole-number percent (0-100) to a Perbill.
func PerbillFromPercent(percent uint32) Perbill {
	return Perbill{Parts: math.NewInt(int64(percent)).MulRaw(10_000_000)}
}

// MulFloor multiplies amount by the ratio, rounding toward zero.
func (p Perbill) MulFloor(amount math.Int) math.Int {
	return amount.Mul(p.Parts).Quo(perbillUnit)
}

// MulCeil multiplies amount by the ratio, rounding away from zero on any
// remainder.
func (p Perbill) MulCeil(amount math.Int) math.Int {
	product := amount.Mul(p.Parts)
	quotient := product.Quo(perbillUnit)
	if product.Mod(perbillUnit).IsZero() {
		return quotient
	}
	return quotient.AddRaw(1)
}

// Complement returns 1 - p, i.e. the remaining share after p is taken.
func (p Perbill) Complement() Perbill {
	return Perbill{Parts: perbillUnit.Sub(p.Parts)}
}

// IsZero reports whether the ratio is exactly zero.
func (p Perbill) IsZero() bool {
	return p.Parts.IsNil() || p.Parts.IsZero()
}
