package order

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a book reference with a requested
// quantity. Items are owned exclusively by their order. The same book may
// appear on several items of one order; each line is treated independently.
type Item struct {
	book     *book.Book
	quantity int

	isConstructed bool
}

// NewItem creates a line item for the given book. The book must be a valid
// aggregate and the quantity must be positive.
func NewItem(b *book.Book, quantity int) (Item, error) {
	if err := b.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		book:          b,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Book returns the ordered book. Orders hold a shared reference: when one
// order carries several items for the same book, they point at the same
// aggregate instance so stock mutations are applied once.
func (i Item) Book() *book.Book {
	return i.book
}

// Quantity returns the requested number of copies.
func (i Item) Quantity() int {
	return i.quantity
}
