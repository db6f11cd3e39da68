package radix

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
)

// Base type represents the radix of a positional numeral system.
// The zero value is not a valid base; use [NewBase] or [ParseBase].
//
// Digits of a number in base b are the first b symbols of the alphabet
// returned by [Base.Digits] for [MaxBase].
type Base uint8

const (
	// MinBase is the smallest supported base.
	MinBase Base = 2
	// MaxBase is the largest supported base.
	MaxBase Base = Base(len(alphabet))
)

// DecimalPoint is the separator between the integer and fractional digits.
const DecimalPoint = '.'

var errInvalidBase = errors.New("invalid base")

// RangeError is returned when a base is outside of [MinBase, MaxBase].
type RangeError struct {
	Base int // rejected value
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("base of a number system must be from %v to %v, got %v", MinBase, MaxBase, e.Base)
}

// NewBase returns the base b.
// NewBase returns a [*RangeError] if b is not within [MinBase, MaxBase].
func NewBase(b int) (Base, error) {
	if b < int(MinBase) || b > int(MaxBase) {
		return 0, &RangeError{Base: b}
	}
	return Base(b), nil
}

// MustNewBase is like [NewBase] but panics if the base is out of range.
// It simplifies safe initialization of global variables holding bases.
func MustNewBase(b int) Base {
	base, err := NewBase(b)
	if err != nil {
		panic(fmt.Sprintf("NewBase(%v) failed: %v", b, err))
	}
	return base
}

// ClampBase returns b limited to the range [MinBase, MaxBase].
func ClampBase(b int) Base {
	return Base(max(int(MinBase), min(b, int(MaxBase))))
}

// ParseBase converts a decimal string to a base.
func ParseBase(s string) (Base, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidBase, err)
	}
	return NewBase(n)
}

// IsValid returns true if the base is within [MinBase, MaxBase].
func (b Base) IsValid() bool {
	return MinBase <= b && b <= MaxBase
}

// Digits returns the symbols that are valid digits in base b,
// ordered by value.
func (b Base) Digits() string {
	if !b.IsValid() {
		return ""
	}
	return alphabet[:b]
}

// digit returns the value of symbol r if it is a valid digit in base b.
func (b Base) digit(r rune) (int, bool) {
	d := digitValue(r)
	if d < 0 || d >= int(b) {
		return 0, false
	}
	return d, true
}

// String method implements the [fmt.Stringer] interface and returns
// the base written in decimal.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (b Base) String() string {
	return strconv.Itoa(int(b))
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseBase].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (b *Base) UnmarshalText(text []byte) error {
	var err error
	*b, err = ParseBase(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Base(0), err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (b Base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (b *Base) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*b, err = NewBase(int(value))
	case string:
		*b, err = ParseBase(value)
	case []byte:
		*b, err = ParseBase(string(value))
	case nil:
		err = fmt.Errorf("null values are not supported")
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Base(0), err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (b Base) Value() (driver.Value, error) {
	return int64(b), nil
}
