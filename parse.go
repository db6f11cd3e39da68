package radix

import (
	"fmt"
	"unicode"
)

// Parts holds the digit strings of a number as they appear in the input.
// Both fields may be empty: an empty or blank input represents zero.
type Parts struct {
	Int  string // digits before the decimal point
	Frac string // digits after the decimal point
}

// ParseError describes the first invalid character of an input.
type ParseError struct {
	Msg string // expected character class at the failure point
	Pos int    // 0-based character offset in the original input
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %v: %v", e.Pos, e.Msg)
}

// state of the number scanner.
type state uint8

const (
	expectSpaceOrDotOrIntStart state = iota
	expectIntMiddleOrDot
	expectFractStart
	expectFractMiddle
)

// ParseParts splits s into the integer and fractional digits of a number
// written in base b.
// Leading white space is skipped.
// The input must be in one of the following formats:
//
//	1234.5678
//	1234.
//	.5678
//	1234
//
// ParseParts returns a [*ParseError] at the first character that is not
// allowed by the grammar.
// Its position counts characters from the beginning of s, including
// skipped white space.
// See also [Grammar].
func ParseParts(s string, b Base) (Parts, error) {
	if !b.IsValid() {
		return Parts{}, &RangeError{Base: int(b)}
	}

	var (
		p       Parts
		intBeg  = -1
		fracBeg = -1
		pos     = 0
		st      = expectSpaceOrDotOrIntStart
	)

	for i, c := range s {
		_, ok := b.digit(c)
		switch st {
		case expectSpaceOrDotOrIntStart:
			switch {
			case unicode.IsSpace(c):
			case ok:
				intBeg = i
				st = expectIntMiddleOrDot
			case c == DecimalPoint:
				st = expectFractStart
			default:
				return Parts{}, unexpectedIntChar(c, pos, b, true)
			}
		case expectIntMiddleOrDot:
			switch {
			case ok:
			case c == DecimalPoint:
				p.Int = s[intBeg:i]
				st = expectFractStart
			default:
				return Parts{}, unexpectedIntChar(c, pos, b, false)
			}
		case expectFractStart:
			if !ok {
				return Parts{}, unexpectedFracChar(c, pos, b)
			}
			fracBeg = i
			st = expectFractMiddle
		case expectFractMiddle:
			if !ok {
				return Parts{}, unexpectedFracChar(c, pos, b)
			}
		}
		pos++
	}

	switch st {
	case expectIntMiddleOrDot:
		p.Int = s[intBeg:]
	case expectFractMiddle:
		p.Frac = s[fracBeg:]
	}
	return p, nil
}

func unexpectedIntChar(c rune, pos int, b Base, leading bool) *ParseError {
	expect := "decimal point"
	if leading {
		expect = "space or decimal point"
	}
	return &ParseError{
		Msg: fmt.Sprintf("invalid character %q in integer part, expecting %v %q or one of digits %q",
			c, expect, DecimalPoint, b.Digits()),
		Pos: pos,
	}
}

func unexpectedFracChar(c rune, pos int, b Base) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf("invalid character %q in fractional part, expecting one of digits %q",
			c, b.Digits()),
		Pos: pos,
	}
}
