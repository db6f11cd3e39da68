package radix

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
)

// DefaultPrecision is the number of fractional digits used by
// [Number.String] and by [Number.Format] when no precision is given.
const DefaultPrecision = 20

var errNegative = errors.New("negative value")

// Number type represents an exact non-negative rational value.
// Its zero value corresponds to 0.
// The integer and fractional parts are kept separately with unbounded
// precision, so no rounding happens until the number is rendered.
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	whole *big.Int // integer part, never negative
	frac  *big.Rat // fractional part, within [0, 1)
}

// newNumberUnsafe creates a new number without checking its parts.
// Use it only if you are absolutely sure that the arguments are valid.
func newNumberUnsafe(whole *big.Int, frac *big.Rat) Number {
	return Number{whole: whole, frac: frac}
}

// NewNumber returns a number equal to r.
// NewNumber returns an error if r is negative.
func NewNumber(r *big.Rat) (Number, error) {
	if r.Sign() < 0 {
		return Number{}, fmt.Errorf("converting %v: %w", r.RatString(), errNegative)
	}
	whole, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	frac := new(big.Rat).SetFrac(rem, r.Denom())
	return newNumberUnsafe(whole, frac), nil
}

// ParseNumber converts a string written in base b to a number.
// See [ParseParts] for the accepted formats.
//
// ParseNumber returns a [*RangeError] if b is not a valid base and
// a [*ParseError] if the string is malformed.
func ParseNumber(s string, b Base) (Number, error) {
	p, err := ParseParts(s, b)
	if err != nil {
		return Number{}, err
	}
	return evaluate(p, b), nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string, b Base) Number {
	n, err := ParseNumber(s, b)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q, %v) failed: %v", s, b, err))
	}
	return n
}

// evaluate computes the exact value of digits already validated for base b.
// The fractional digits d1 d2 ... dk are read as the integer d1d2...dk
// divided by b^k.
func evaluate(p Parts, b Base) Number {
	whole := horner(p.Int, b)
	frac := new(big.Rat)
	if p.Frac != "" {
		den := new(big.Int).Exp(big.NewInt(int64(b)), big.NewInt(int64(len(p.Frac))), nil)
		frac.SetFrac(horner(p.Frac, b), den)
	}
	return newNumberUnsafe(whole, frac)
}

// horner returns the value of digits in base b.
// Empty string is 0.
func horner(digits string, b Base) *big.Int {
	z := new(big.Int)
	bb := big.NewInt(int64(b))
	d := new(big.Int)
	for _, c := range digits {
		v, _ := b.digit(c)
		z.Mul(z, bb)
		z.Add(z, d.SetInt64(int64(v)))
	}
	return z
}

// Whole returns the integer part of the number.
func (n Number) Whole() *big.Int {
	if n.whole == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.whole)
}

// Frac returns the fractional part of the number, which is within [0, 1).
func (n Number) Frac() *big.Rat {
	if n.frac == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(n.frac)
}

// Rat returns the value of the number as a single fraction.
func (n Number) Rat() *big.Rat {
	r := new(big.Rat).SetInt(n.Whole())
	return r.Add(r, n.Frac())
}

// IsZero returns:
//
//	true  if n = 0
//	false otherwise
func (n Number) IsZero() bool {
	return n.Whole().Sign() == 0 && n.IsInt()
}

// IsInt returns true if the fractional part of the number is exactly zero.
func (n Number) IsInt() bool {
	return n.frac == nil || n.frac.Sign() == 0
}

// Cmp compares numbers and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Number) Cmp(m Number) int {
	return n.Rat().Cmp(m.Rat())
}

// Text returns the number written in base b with at most prec digits
// after the decimal point.
// The integer part is always present, so zero is written as "0".
// Fractional digits are truncated, not rounded, and generation stops
// as soon as the remaining fraction is exactly zero: 1/2 in base 10
// is "0.5" for any positive prec.
// The decimal point is omitted if prec is not positive or the number is
// an integer.
//
// Text panics if b is not a valid base.
func (n Number) Text(b Base, prec int) string {
	if !b.IsValid() {
		panic(fmt.Sprintf("Number.Text(%v, %v) failed: %v", b, prec, &RangeError{Base: int(b)}))
	}
	buf := appendWhole(nil, n.Whole(), b)
	if prec > 0 && !n.IsInt() {
		buf = append(buf, DecimalPoint)
		buf = appendFrac(buf, n.frac, b, prec)
	}
	return string(buf)
}

// appendWhole appends digits of x in base b by repeated division.
func appendWhole(buf []byte, x *big.Int, b Base) []byte {
	if x.Sign() == 0 {
		return append(buf, digitSymbol(0))
	}
	pos := len(buf)
	bb := big.NewInt(int64(b))
	q, r := new(big.Int).Set(x), new(big.Int)
	for q.Sign() != 0 {
		q.QuoRem(q, bb, r)
		buf = append(buf, digitSymbol(int(r.Int64())))
	}
	slices.Reverse(buf[pos:])
	return buf
}

// appendFrac appends up to prec digits of x in base b by repeated
// multiplication.
func appendFrac(buf []byte, x *big.Rat, b Base, prec int) []byte {
	bb := big.NewInt(int64(b))
	num, den := new(big.Int).Set(x.Num()), x.Denom()
	d, r := new(big.Int), new(big.Int)
	for i := 0; i < prec && num.Sign() != 0; i++ {
		num.Mul(num, bb)
		d.QuoRem(num, den, r)
		buf = append(buf, digitSymbol(int(d.Int64())))
		num, r = r, num
	}
	return buf
}

// String method implements the [fmt.Stringer] interface and returns
// the number written in base 10 with at most [DefaultPrecision] digits
// after the decimal point.
// See also methods [Number.Text], [Number.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.Text(10, DefaultPrecision)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Base | Example  |
//	| ---------- | ---- | -------- |
//	| %s, %v, %f | 10   | 5.25     |
//	| %b         | 2    | 101.01   |
//	| %o         | 8    | 5.2      |
//	| %x         | 16   | 5.4      |
//	| %d         | 10   | 5        |
//
// Precision limits the number of fractional digits.
// The default precision is [DefaultPrecision], or 0 for the %d verb.
// The '-' format flag pads with trailing spaces instead of leading ones.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {
	var b Base
	prec := DefaultPrecision
	switch verb {
	case 's', 'v', 'f':
		b = 10
	case 'd':
		b, prec = 10, 0
	case 'b':
		b = 2
	case 'o':
		b = 8
	case 'x':
		b = 16
	}
	if p, ok := state.Precision(); ok {
		prec = p
	}

	var text string
	if b != 0 {
		text = n.Text(b, prec)
	} else {
		text = "%!" + string(verb) + "(radix.Number=" + n.String() + ")"
	}

	// Padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	//nolint:errcheck
	state.Write(buf)
}
