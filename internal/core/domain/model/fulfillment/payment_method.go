package fulfillment

import (
	"fmt"

	"banda/internal/pkg/errs"
)

// PaymentMethod represents the payment instrument selected at checkout.
// Cash on delivery carries a pooling restriction: pooled runs complicate
// per-seller payment verification, so COD orders are delivered separately.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodAgriPay is the marketplace's own wallet.
	PaymentMethodAgriPay

	// PaymentMethodMpesa is mobile money.
	PaymentMethodMpesa

	// PaymentMethodCard is card payment.
	PaymentMethodCard

	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their wire names.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodAgriPay: "agripay",
		PaymentMethodMpesa:   "mpesa",
		PaymentMethodCard:    "card",
		PaymentMethodCOD:     "cod",
	}
}

// getValidPaymentMethodStrings returns only valid PaymentMethod values.
func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodAgriPay: "agripay",
		PaymentMethodMpesa:   "mpesa",
		PaymentMethodCard:    "card",
		PaymentMethodCOD:     "cod",
	}
}

// PaymentMethodFromString parses a wire name into a PaymentMethod.
// Returns an error for names outside {agripay, mpesa, card, cod}.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getValidPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire name of the payment method.
// This method implements the fmt.Stringer interface and is safe to call
// on any PaymentMethod value, including invalid ones.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// IsCOD reports whether the method is cash on delivery.
func (m PaymentMethod) IsCOD() bool {
	return m == PaymentMethodCOD
}
