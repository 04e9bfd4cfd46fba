package book

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrBookIsNotConstructed is returned when a Book instance was not created
// through the NewBook or RestoreBook factory methods.
var ErrBookIsNotConstructed = errors.New("Book must be created via NewBook or RestoreBook constructor")

// Book is the inventory aggregate root. It holds the catalog attributes of a
// title together with the count of available copies, and is the only place
// where that count is mutated.
//
// Book maintains these invariants:
//   - Must have a valid unique identifier and a non-empty title
//   - Unit price is never negative
//   - Available copy count is never negative after any operation
//   - Can only be created through NewBook or RestoreBook
type Book struct {
	id        kernel.UUID
	title     string
	year      int
	price     kernel.Money
	available int

	isConstructed bool
}

// NewBook creates a Book with validation of all attributes.
func NewBook(id kernel.UUID, title string, year int, price kernel.Money, available int) (*Book, error) {
	b := &Book{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setYear(year),
		b.setPrice(price),
		b.setAvailable(available),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBook reconstructs a Book from persistence. It applies the same
// validation as NewBook.
func RestoreBook(id kernel.UUID, title string, year int, price kernel.Money, available int) (*Book, error) {
	return NewBook(id, title, year, price, available)
}

// Validate ensures the Book was created through a constructor.
func (b *Book) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookIsNotConstructed
	}

	return nil
}

// IsEqual compares two books by their unique identifiers.
func (b *Book) IsEqual(other *Book) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the book's unique identifier.
func (b *Book) ID() kernel.UUID {
	return b.id
}

// Title returns the book's title.
func (b *Book) Title() string {
	return b.title
}

// Year returns the publication year.
func (b *Book) Year() int {
	return b.year
}

// Price returns the unit price.
func (b *Book) Price() kernel.Money {
	return b.price
}

// Available returns the count of unsold copies.
func (b *Book) Available() int {
	return b.available
}

// Reserve removes the requested number of copies from the available stock.
//
// Returns a ValueIsInvalidError for a non-positive quantity and an
// InsufficientStockError when the request exceeds the available count.
// The stock is left unchanged on any error.
func (b *Book) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > b.available {
		return errs.NewInsufficientStockError(b.id.String(), quantity, b.available)
	}

	b.available -= quantity
	return nil
}

// Restock returns previously reserved copies to the available stock.
// The quantity must be positive; restocking is the exact reverse of Reserve.
func (b *Book) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	b.available += quantity
	return nil
}

func (b *Book) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Book) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	b.title = title
	return nil
}

func (b *Book) setYear(year int) error {
	if year <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("year", fmt.Errorf("%d is not greater than 0", year))
	}
	b.year = year
	return nil
}

func (b *Book) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	b.price = price
	return nil
}

func (b *Book) setAvailable(available int) error {
	if available < 0 {
		return errs.NewValueIsInvalidErrorWithCause("available", fmt.Errorf("%d is negative", available))
	}
	b.available = available
	return nil
}
