package commands

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrCancelAbandonedOrdersCommandIsNotConstructed = errors.New(
		"CancelAbandonedOrdersCommand must be created via NewCancelAbandonedOrdersCommand constructor",
	)
)

// CancelAbandonedOrdersCommand represents a request to cancel every order
// that has stayed in New status for longer than the payment period.
type CancelAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	paymentPeriod time.Duration

	guard guard.ConstructorGuard
}

// NewCancelAbandonedOrdersCommand creates the command with the grace period
// customers get to pay before their order is cancelled.
func NewCancelAbandonedOrdersCommand(paymentPeriod time.Duration) (CancelAbandonedOrdersCommand, error) {
	if paymentPeriod <= 0 {
		return CancelAbandonedOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"paymentPeriod", fmt.Errorf("%s is not greater than 0", paymentPeriod))
	}

	return CancelAbandonedOrdersCommand{
		paymentPeriod: paymentPeriod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelAbandonedOrdersCommandIsNotConstructed if validation fails.
func (c CancelAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelAbandonedOrdersCommandIsNotConstructed)
}

// PaymentPeriod returns how long an order may stay unpaid.
func (c CancelAbandonedOrdersCommand) PaymentPeriod() time.Duration {
	return c.paymentPeriod
}
