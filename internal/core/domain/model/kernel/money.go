package kernel

import (
	"errors"
	"fmt"
	"strings"

	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value bypassed NewMoney.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney")

// Money is a non-negative amount in Rupiah. Prices and order totals use it.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromInt is a shorthand for whole Rupiah amounts.
func NewMoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// NewMoneyFromFloat converts an amount decoded from JSON.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures the value was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Cmp compares amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 is used by the HTTP adapter, which exchanges plain JSON numbers.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.String()
}

// Format renders the amount the way the stock table shows it, e.g. "Rp 1.250.000"
// or "Rp 12.500,5" for fractional amounts.
func (m Money) Format() string {
	whole := m.amount.Truncate(0)
	frac := m.amount.Sub(whole)

	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if !frac.IsZero() {
		fracDigits := strings.TrimPrefix(frac.String(), "0.")
		b.WriteByte(',')
		b.WriteString(fracDigits)
	}

	return "Rp " + b.String()
}
