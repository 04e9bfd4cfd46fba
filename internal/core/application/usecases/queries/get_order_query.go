// Package queries contains read-only operations for retrieving order data.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and assemble priced order views without going through
// repositories.
package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full price breakdown.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s totals %s\n", response.ID, response.FinalPrice)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one order line in a query response, priced at the
// book's current unit price.
type OrderItemResponse struct {
	BookID    kernel.UUID
	Title     string
	UnitPrice kernel.Money
	Quantity  int
	LinePrice kernel.Money
}

// DiscountResponse is one applied discount in a query response.
type DiscountResponse struct {
	Name   string
	Amount kernel.Money
}

// RecipientResponse carries the recipient details of an order.
type RecipientResponse struct {
	ID      kernel.UUID
	Email   string
	Name    string
	Phone   string
	Street  string
	City    string
	ZipCode string
}

// OrderResponse is the priced view of an order. The price breakdown is
// computed at read time from the current book prices, never read from
// storage.
type OrderResponse struct {
	ID            kernel.UUID
	Status        order.Status
	Delivery      order.Delivery
	CreatedAt     time.Time
	Recipient     RecipientResponse
	Items         []OrderItemResponse
	ItemsPrice    kernel.Money
	DeliveryPrice kernel.Money
	Discounts     []DiscountResponse
	FinalPrice    kernel.Money
}
