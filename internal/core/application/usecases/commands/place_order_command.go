package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderItem is one requested line of a placement: a book identifier with
// the number of copies to order.
type PlaceOrderItem struct {
	bookID   kernel.UUID
	quantity int
}

// NewPlaceOrderItem creates a requested line item. The book ID must be valid
// and the quantity positive.
func NewPlaceOrderItem(bookID kernel.UUID, quantity int) (PlaceOrderItem, error) {
	if err := bookID.Validate(); err != nil {
		return PlaceOrderItem{}, err
	}
	if quantity <= 0 {
		return PlaceOrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return PlaceOrderItem{bookID: bookID, quantity: quantity}, nil
}

// BookID returns the identifier of the requested book.
func (i PlaceOrderItem) BookID() kernel.UUID {
	return i.bookID
}

// Quantity returns the requested number of copies.
func (i PlaceOrderItem) Quantity() int {
	return i.quantity
}

// RecipientData carries the recipient details submitted with a placement.
// The handler resolves it against the stored recipients by email.
type RecipientData struct {
	Email   string
	Name    string
	Phone   string
	Street  string
	City    string
	ZipCode string
}

// PlaceOrderCommand represents a request to place a new order: who receives
// it, how it is delivered, and which books in which quantities.
//
// Example:
//
//	item, _ := NewPlaceOrderItem(bookID, 2)
//	cmd, err := NewPlaceOrderCommand(
//	    RecipientData{Email: "marek@example.org", Name: "Marek Nowak"},
//	    order.Courier,
//	    []PlaceOrderItem{item},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	recipient RecipientData
	delivery  order.Delivery
	items     []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. Validates the
// recipient contact details, the delivery method, and that at least one item
// is requested.
func NewPlaceOrderCommand(
	recipient RecipientData, delivery order.Delivery, items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipient(recipient),
		cmd.setDelivery(delivery),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Recipient returns the submitted recipient details.
func (c PlaceOrderCommand) Recipient() RecipientData {
	return c.recipient
}

// Delivery returns the chosen delivery method.
func (c PlaceOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

// Items returns the requested line items.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setRecipient(recipient RecipientData) error {
	if recipient.Email == "" {
		return errs.NewValueIsRequiredError("recipient email")
	}
	if recipient.Name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}

	c.recipient = recipient
	return nil
}

func (c *PlaceOrderCommand) setDelivery(delivery order.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
