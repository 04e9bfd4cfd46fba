package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Delivery represents the delivery method chosen for an order.
// The method determines the delivery fee applied by the pricing engine.
type Delivery int

const (
	// UnknownDelivery represents an invalid or undefined delivery method.
	UnknownDelivery Delivery = iota

	// Courier delivers to the recipient's address for a flat fee.
	Courier

	// SelfPickup means the recipient collects the order in store, free of charge.
	SelfPickup
)

func getDeliveryStrings() map[Delivery]string {
	return map[Delivery]string{
		UnknownDelivery: "Unknown",
		Courier:         "Courier",
		SelfPickup:      "SelfPickup",
	}
}

func getValidDeliveryStrings() map[Delivery]string {
	//nolint:exhaustive // UnknownDelivery is intentionally excluded as it's invalid
	return map[Delivery]string{
		Courier:    "Courier",
		SelfPickup: "SelfPickup",
	}
}

// DeliveryFromString parses a delivery method name into a Delivery.
func DeliveryFromString(s string) (Delivery, error) {
	for delivery, name := range getValidDeliveryStrings() {
		if name == s {
			return delivery, nil
		}
	}
	return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause("delivery", fmt.Errorf("%q is not a valid delivery method", s))
}

// Validate checks if the Delivery value is one of the defined methods.
func (d Delivery) Validate() error {
	if _, ok := getValidDeliveryStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery is invalid", fmt.Errorf("%d is not a valid delivery method", d))
	}
	return nil
}

// String returns the human-readable name of the delivery method.
func (d Delivery) String() string {
	if str, ok := getDeliveryStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
