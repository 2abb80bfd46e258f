package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod enumerates the ways a customer can pay for an order.
// The zero value means "not provided"; checkout rejects it, plain order
// creation tolerates it.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an absent or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	CreditCard
	DebitCard
	Cash
	Pix
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CreditCard: "CREDIT_CARD",
		DebitCard:  "DEBIT_CARD",
		Cash:       "CASH",
		Pix:        "PIX",
	}
}

// PaymentMethodFromString parses the wire representation ("CREDIT_CARD",
// "DEBIT_CARD", "CASH", "PIX") into a PaymentMethod. The empty string
// parses to UnknownPaymentMethod without error so callers can distinguish
// "absent" from "malformed".
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return UnknownPaymentMethod, nil
	}
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the method is one of the defined values.
// UnknownPaymentMethod is invalid: use this where a method is mandatory.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	return nil
}

// String returns the wire representation, or "" for an absent method.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return ""
}

// PaymentStatus tracks the payment lifecycle of an order. The zero value
// means no payment has been initiated; it becomes PaymentPending exactly
// once, when the order starts processing. The remaining states are owned
// by the external payment collaborator.
type PaymentStatus int

const (
	// NoPayment represents an order without an initiated payment.
	NoPayment PaymentStatus = iota

	PaymentPending
	Paid
	PaymentFailed
	PaymentCanceled
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "PENDING",
		Paid:            "PAID",
		PaymentFailed:   "FAILED",
		PaymentCanceled: "CANCELED",
		Refunded:        "REFUNDED",
	}
}

// String returns the wire representation, or "" when no payment exists.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return ""
}
