package kernel

import (
	"fmt"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in minor currency units
// (Tanzanian shilling cents). It is a value object; arithmetic returns new
// values and never mutates the receiver.
type Money int64

// NewMoney creates a Money amount, rejecting negative values.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money(amount), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MultiplyBy returns the amount multiplied by a quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return m * Money(quantity)
}

// Int64 returns the raw amount in minor units.
func (m Money) Int64() int64 {
	return int64(m)
}

// String implements fmt.Stringer, rendering whole shillings with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("TZS %d.%02d", m/100, m%100)
}
