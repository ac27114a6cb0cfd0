package order

import (
	"fmt"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// PaymentMethod identifies how the buyer pays for the order. Cash on delivery
// is the only method that carries the full lifecycle implemented here.
type PaymentMethod string

const (
	// PaymentMethodCashOnDelivery means the rider collects cash at the
	// delivery point.
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Validate checks that the payment method is supported.
func (m PaymentMethod) Validate() error {
	if m != PaymentMethodCashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a supported payment method", string(m)))
	}
	return nil
}

// PaymentStatus tracks whether the buyer has paid. It is independent of the
// delivery status except that completing a COD delivery marks the order paid.
type PaymentStatus string

const (
	// PaymentUnpaid is the initial payment state.
	PaymentUnpaid PaymentStatus = "unpaid"
	// PaymentPaid is set when the rider collects the cash on delivery.
	PaymentPaid PaymentStatus = "paid"
)

// Validate checks that the payment status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s != PaymentUnpaid && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}
