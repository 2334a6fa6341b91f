// Package amount provides the fixed-point decimal value type used for every
// asset amount and price in the system. Token amounts cross 18-decimal scale
// boundaries, so all arithmetic routes through this package and never through
// floating point.
package amount

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// RoundingMode selects how Round resolves fractional digits.
type RoundingMode int

const (
	// RoundDown rounds toward negative infinity. The default for amounts
	// owed to the protocol, so liquidity is never over-promised.
	RoundDown RoundingMode = iota
	// RoundUp rounds toward positive infinity.
	RoundUp
	// RoundHalfUp rounds half away from zero.
	RoundHalfUp
)

// Amount is an arbitrary-precision decimal amount.
type Amount struct {
	d decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// New wraps a decimal.Decimal.
func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromString parses a decimal string. Malformed input yields an
// InvalidOperation error.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errors.NewDomainError(errors.InvalidOperation, "malformed decimal string "+s).WithCause(err)
	}
	return Amount{d: d}, nil
}

// MustFromString parses a decimal string and panics on malformed input.
// Reserved for constants and tests.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromInt64 converts an int64.
func FromInt64(i int64) Amount {
	return Amount{d: decimal.NewFromInt(i)}
}

// FromBigInt converts a big integer, e.g. a base-unit amount read from chain.
func FromBigInt(i *big.Int) Amount {
	return Amount{d: decimal.NewFromBigInt(i, 0)}
}

// Decimal exposes the underlying decimal.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Mul returns a × b. Multiplication is exact.
func (a Amount) Mul(b Amount) Amount {
	return Amount{d: a.d.Mul(b.d)}
}

// Div returns a ÷ b. Division by zero yields an InvalidOperation error.
// The quotient carries decimal.DivisionPrecision fractional digits; use
// MulDivFloor where integer exactness matters.
func (a Amount) Div(b Amount) (Amount, error) {
	if b.d.IsZero() {
		return Amount{}, errors.NewDomainError(errors.InvalidOperation, "division by zero")
	}
	return Amount{d: a.d.Div(b.d)}, nil
}

// MulDivFloor returns ⌊a × mul ÷ div⌋ computed exactly, with no intermediate
// precision loss. This is the primitive behind remaining-fillable math.
func (a Amount) MulDivFloor(mul, div Amount) (Amount, error) {
	if div.d.IsZero() {
		return Amount{}, errors.NewDomainError(errors.InvalidOperation, "division by zero")
	}
	q, r := a.d.Mul(mul.d).QuoRem(div.d, 0)
	if r.IsNegative() {
		q = q.Sub(decimal.New(1, 0))
	}
	return Amount{d: q}, nil
}

// Cmp compares a and b: -1 if a < b, 0 if equal, +1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports a == b.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports a == 0.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsPositive reports a > 0.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

// IsNegative reports a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Abs returns |a|.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Round resolves a to the given number of fractional digits under mode.
func (a Amount) Round(places int32, mode RoundingMode) Amount {
	switch mode {
	case RoundUp:
		return Amount{d: a.d.RoundCeil(places)}
	case RoundHalfUp:
		return Amount{d: a.d.Round(places)}
	default:
		return Amount{d: a.d.RoundFloor(places)}
	}
}

// ToBaseUnits scales a human-unit amount into the asset's integer base-unit
// scale: ⌊a × 10^decimals⌋.
func (a Amount) ToBaseUnits(decimals int32) Amount {
	return Amount{d: a.d.Shift(decimals).RoundFloor(0)}
}

// ToHumanUnits scales a base-unit amount back to human units: a ÷ 10^decimals.
// The shift is exact.
func (a Amount) ToHumanUnits(decimals int32) Amount {
	return Amount{d: a.d.Shift(-decimals)}
}

// BigInt truncates to a big integer.
func (a Amount) BigInt() *big.Int {
	return a.d.BigInt()
}

// String renders the amount without exponent notation.
func (a Amount) String() string {
	return a.d.String()
}

// MarshalJSON renders the amount as a JSON string to preserve precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.d.String() + `"`), nil
}

// UnmarshalJSON parses a JSON number or string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.NewDomainError(errors.InvalidOperation, "malformed decimal").WithCause(err)
	}
	a.d = d
	return nil
}
