package radix

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// NewNumberFromDecimal converts a decimal to an exact number.
// See also method [Number.Decimal].
//
// NewNumberFromDecimal returns an error if the decimal is negative.
func NewNumberFromDecimal(d decimal.Decimal) (Number, error) {
	if d.IsNeg() {
		return Number{}, fmt.Errorf("converting %v: %w", d, errNegative)
	}
	coef := new(big.Int).SetUint64(d.Coef())
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	return NewNumber(new(big.Rat).SetFrac(coef, pow))
}

// Decimal returns the number truncated to scale digits after the decimal
// point.
// If the number has fewer significant fractional digits, the result is
// zero-padded to the right.
// See also constructor [NewNumberFromDecimal].
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - scale) digits.
func (n Number) Decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v: scale %v out of range", n, scale)
	}
	s := n.Text(10, scale)
	d, err := decimal.ParseExact(s, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", s, err)
	}
	d = d.Pad(scale)
	if d.Scale() < scale {
		return decimal.Decimal{}, fmt.Errorf("converting %v: integer part is too large", s)
	}
	return d, nil
}
