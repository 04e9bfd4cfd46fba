package order

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal status changes. Use it
// with errors.Is to classify an InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	New ──┬──> Paid ──> Shipped
//	      │
//	      └──> Cancelled
//
// Shipped and Cancelled are terminal; no transition leaves them. The
// transition New -> Cancelled revokes the order, which obliges the caller to
// restore the reserved stock.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first placed.
	// Orders in this status await payment and may still be cancelled.
	New

	// Paid indicates the order has been paid for and can be shipped.
	// Paid orders can no longer be cancelled.
	Paid

	// Shipped indicates the order has left the warehouse.
	// This is a final state with no further transitions allowed.
	Shipped

	// Cancelled indicates the order was revoked before payment.
	// This is a final state; the reserved stock has been restored.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name, case-sensitively, into a Status.
// Used when accepting status values from external callers.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// InvalidTransitionError reports an attempted status change that the state
// machine does not allow. The order is left unchanged when it is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UpdateStatusResult carries the outcome of a successful status transition.
// Revoked signals that the transition withdrew the order from fulfilment and
// the caller must restore the reserved stock.
type UpdateStatusResult struct {
	status  Status
	revoked bool
}

// Status returns the status the order transitioned to.
func (r UpdateStatusResult) Status() Status {
	return r.status
}

// Revoked reports whether the transition requires stock restoration.
func (r UpdateStatusResult) Revoked() bool {
	return r.revoked
}

// Update validates the transition from s to newStatus and returns the result.
//
// Allowed edges:
//   - New -> Paid
//   - New -> Cancelled (revoking)
//   - Paid -> Shipped
//
// Every other combination, including a transition to the same status, fails
// with an InvalidTransitionError and performs no side effects.
func (s Status) Update(newStatus Status) (UpdateStatusResult, error) {
	if err := newStatus.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	switch {
	case s == New && newStatus == Paid:
		return UpdateStatusResult{status: Paid}, nil
	case s == New && newStatus == Cancelled:
		return UpdateStatusResult{status: Cancelled, revoked: true}, nil
	case s == Paid && newStatus == Shipped:
		return UpdateStatusResult{status: Shipped}, nil
	}

	return UpdateStatusResult{}, NewInvalidTransitionError(s, newStatus)
}
