package kernel

import (
	"fmt"

	"wiggy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an amount of whole currency units. Prices, fees and totals in the
// catalog are integral, so Money never carries fractions; the only fractional step
// (tax) is rounded back to whole units by Percent.
type Money struct {
	amount int64
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{}

// NewMoney returns an error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is less than 0", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the number of currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply returns m * quantity. Callers validate quantity before multiplying.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// Percent returns round(m * rate), rounding half away from zero.
// The product is computed in decimal so that e.g. 10 * 0.05 is exactly 0.5 and rounds to 1.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: decimal.NewFromInt(m.amount).Mul(rate).Round(0).IntPart()}
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
