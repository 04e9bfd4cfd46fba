package order

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/recipient"
	"bookstore/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the order lifecycle. It owns its line items
// exclusively and references its recipient by shared ownership.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier, recipient, and delivery method
//   - Must contain at least one valid line item
//   - Status transitions follow the state machine defined on Status
//   - The creation timestamp is set once and never changes
type Order struct {
	id        kernel.UUID
	recipient *recipient.Recipient
	delivery  Delivery
	items     []Item
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an Order in New status with the creation timestamp set to
// the current time. All parts are validated; an invalid recipient, delivery
// method, or item set fails the construction.
func NewOrder(id kernel.UUID, rcpt *recipient.Recipient, delivery Delivery, items []Item) (*Order, error) {
	return RestoreOrder(id, rcpt, delivery, items, New, time.Now().UTC())
}

// RestoreOrder reconstructs an Order from persistence with an explicit status
// and creation timestamp. It applies the same validation as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	rcpt *recipient.Recipient,
	delivery Delivery,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecipient(rcpt),
		o.setDelivery(delivery),
		o.setItems(items),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Recipient returns the shared recipient reference.
func (o *Order) Recipient() *recipient.Recipient {
	return o.recipient
}

// Delivery returns the chosen delivery method.
func (o *Order) Delivery() Delivery {
	return o.delivery
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdateStatus transitions the order to newStatus through the state machine.
//
// On success the order's status is updated and the result reports whether the
// transition revoked the order, obliging the caller to restore the reserved
// stock of every line item. On failure the order is left unchanged and an
// InvalidTransitionError is returned.
func (o *Order) UpdateStatus(newStatus Status) (UpdateStatusResult, error) {
	result, err := o.status.Update(newStatus)
	if err != nil {
		return UpdateStatusResult{}, err
	}

	o.status = result.Status()
	return result, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRecipient(rcpt *recipient.Recipient) error {
	if err := rcpt.Validate(); err != nil {
		return err
	}
	o.recipient = rcpt
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
