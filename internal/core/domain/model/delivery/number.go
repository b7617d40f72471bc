package delivery

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

// ErrNumberIsNotConstructed is returned when a Number bypassed NewNumber or ParseNumber.
var ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber or ParseNumber")

var numberPattern = regexp.MustCompile(`^DO(\d{4})-(\d{4,})$`)

// Number identifies a delivery order as DO<year>-<sequence>. The sequence is kept
// as an integer so ordering is numeric; the formatted suffix is zero-padded to at
// least four digits and simply grows past 9999.
type Number struct {
	year     int
	sequence int
	guard    guard.ConstructorGuard
}

// NewNumber builds the number for the given year and 1-based sequence.
func NewNumber(year, sequence int) (Number, error) {
	if year < 1 || year > 9999 {
		return Number{}, errs.NewValueIsOutOfRangeError("year", year, 1, 9999)
	}
	if sequence < 1 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	return Number{year: year, sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

// ParseNumber parses the formatted identifier, e.g. "DO2024-0001".
func ParseNumber(s string) (Number, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery order number",
			fmt.Errorf("%q does not match DO<year>-<sequence>", s),
		)
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("delivery order number", err)
	}
	sequence, err := strconv.Atoi(m[2])
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("delivery order number", err)
	}

	return NewNumber(year, sequence)
}

// MustParseNumber is ParseNumber for literals known to be valid.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate ensures the number was built by a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

func (n Number) Year() int     { return n.year }
func (n Number) Sequence() int { return n.sequence }

// Next returns the following number in the same year.
func (n Number) Next() Number {
	return Number{year: n.year, sequence: n.sequence + 1, guard: guard.NewConstructorGuard()}
}

// IsEqual compares year and sequence.
func (n Number) IsEqual(other Number) bool {
	return n.year == other.year && n.sequence == other.sequence
}

// Compare orders numbers by year, then sequence.
func (n Number) Compare(other Number) int {
	switch {
	case n.year != other.year:
		return cmpInt(n.year, other.year)
	default:
		return cmpInt(n.sequence, other.sequence)
	}
}

func (n Number) String() string {
	return fmt.Sprintf("DO%04d-%04d", n.year, n.sequence)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
