package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/recipient"
	"bookstore/internal/pkg/errs"
)

// PlaceOrderCommandHandler orchestrates order placement. Loads the requested
// books, reserves their stock, resolves or creates the recipient by email, and
// persists the new order. All writes happen inside a single transaction, so a
// failed placement leaves the stock untouched.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown book requested")
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    log.Println("Not enough copies in stock")
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	default:
//	    log.Printf("Order %s placed", orderID)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for coordinating writes across books, recipients,
// and orders.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the new order's ID.
//
// When one command requests the same book on several lines, the book is loaded
// once and every line reserves against that single instance, so the stock
// check covers the combined quantity.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookRepo := uow.BookRepository()

	loaded := make(map[string]*book.Book)
	books := make([]*book.Book, 0, len(cmd.Items()))
	items := make([]order.Item, 0, len(cmd.Items()))

	for _, line := range cmd.Items() {
		b, ok := loaded[line.BookID().String()]
		if !ok {
			var err error
			b, err = bookRepo.Get(ctx, line.BookID())
			if err != nil {
				return kernel.UUID{}, err
			}
			loaded[line.BookID().String()] = b
			books = append(books, b)
		}

		if err := b.Reserve(line.Quantity()); err != nil {
			return kernel.UUID{}, err
		}

		item, err := order.NewItem(b, line.Quantity())
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	rcpt, err := h.resolveRecipient(ctx, uow, cmd.Recipient())
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), rcpt, cmd.Delivery(), items)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = bookRepo.UpdateAll(ctx, books); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}

// resolveRecipient returns the recipient registered under the submitted email
// or creates one from the submitted details. The lookup is case-insensitive,
// so repeat customers keep a single recipient record.
func (h PlaceOrderCommandHandler) resolveRecipient(
	ctx context.Context, uow UoW, data RecipientData,
) (*recipient.Recipient, error) {
	recipientRepo := uow.RecipientRepository()

	rcpt, err := recipientRepo.GetByEmail(ctx, data.Email)
	if err == nil {
		return rcpt, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	rcpt, err = recipient.NewRecipient(
		kernel.NewUUID(), data.Email, data.Name, data.Phone, data.Street, data.City, data.ZipCode)
	if err != nil {
		return nil, err
	}

	if err = recipientRepo.Add(ctx, rcpt); err != nil {
		return nil, err
	}

	return rcpt, nil
}
