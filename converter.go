package radix

import (
	"fmt"
)

// Converter rewrites numbers from one base into another.
// The zero value is not usable; use [NewConverter].
// Converter is designed to be safe for concurrent use by multiple goroutines.
type Converter struct {
	from Base // base of the input
	to   Base // base of the output
	prec int  // maximum number of fractional digits in the output
}

// NewConverter returns a converter from base from to base to producing
// at most prec digits after the decimal point.
// A prec that is not positive drops the fractional part.
//
// NewConverter returns a [*RangeError] if either base is not within
// [MinBase, MaxBase].
func NewConverter(from, to, prec int) (Converter, error) {
	f, err := NewBase(from)
	if err != nil {
		return Converter{}, err
	}
	t, err := NewBase(to)
	if err != nil {
		return Converter{}, err
	}
	return Converter{from: f, to: t, prec: max(prec, 0)}, nil
}

// MustNewConverter is like [NewConverter] but panics if a base is out of range.
func MustNewConverter(from, to, prec int) Converter {
	c, err := NewConverter(from, to, prec)
	if err != nil {
		panic(fmt.Sprintf("NewConverter(%v, %v, %v) failed: %v", from, to, prec, err))
	}
	return c
}

// From returns the base of the input.
func (c Converter) From() Base {
	return c.from
}

// To returns the base of the output.
func (c Converter) To() Base {
	return c.to
}

// Prec returns the maximum number of digits after the decimal point.
func (c Converter) Prec() int {
	return c.prec
}

// Convert parses s in the source base and writes its exact value in the
// target base.
// See also [ParseNumber] and [Number.Text].
//
// Convert returns a [*ParseError] if s is malformed; its position refers
// to s itself.
func (c Converter) Convert(s string) (string, error) {
	n, err := ParseNumber(s, c.From())
	if err != nil {
		return "", err
	}
	return c.ConvNumber(n), nil
}

// ConvNumber writes n in the target base.
func (c Converter) ConvNumber(n Number) string {
	return n.Text(c.To(), c.Prec())
}

// Inv returns the converter with source and target bases swapped.
func (c Converter) Inv() Converter {
	return Converter{from: c.to, to: c.from, prec: c.prec}
}

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Converter) String() string {
	return fmt.Sprintf("%v->%v/%v", c.From(), c.To(), c.Prec())
}

// Convert parses s written in base from and returns its value written in
// base to with at most prec digits after the decimal point.
//
// Convert returns a [*RangeError] if either base is not within
// [MinBase, MaxBase], or a [*ParseError] if s is malformed.
// Empty and blank strings are read as 0.
func Convert(s string, from, to, prec int) (string, error) {
	c, err := NewConverter(from, to, prec)
	if err != nil {
		return "", err
	}
	return c.Convert(s)
}
