/*
Package radix implements exact conversion of numbers between positional
numeral systems with bases from 2 to 36.

# Representation

A number is written as an optional integer part and an optional fractional
part separated by [DecimalPoint]:

	1011.01
	.7
	ff.

Digits are taken from a fixed alphabet of 36 symbols.
The first ten are '0' to '9'; the letters follow in the historical order
"abcdefghijklmnopqrtuvwxyzs", where 's' represents the largest value.
Lookup is case-sensitive, and a symbol is a digit in base b only if its
value is less than b.
See [Base.Digits] and [Grammar].

The Number struct holds the value of a parsed number as an unbounded
integer and an exact fraction within [0, 1).
No floating-point arithmetic is involved, so a fraction that terminates
in the target base is written with exactly as many digits as it needs,
and a fraction that does not terminate is truncated at the requested
precision.

# Operations

[Convert] is the main entry point: it validates both bases, parses the
input and renders the result.
[Converter] keeps a pair of bases and a precision for repeated use, and
[Number] exposes the intermediate exact value.
Decimals of the [decimal] package can be converted to and from numbers.

# Errors

[Convert] returns a [*RangeError] if a base is outside of
[MinBase, MaxBase], and a [*ParseError] if the input is malformed.
ParseError reports the 0-based character position of the first invalid
character in the original input, counting any skipped leading white space.
Empty and blank inputs are valid and represent zero.
*/
package radix
