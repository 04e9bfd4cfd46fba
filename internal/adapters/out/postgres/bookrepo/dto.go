// Package bookrepo provides data transfer objects and mapping functions for
// book persistence. Implements the repository pattern for the inventory
// aggregate, converting between domain entities and database rows.
package bookrepo

import (
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookDTO represents the database structure for persisting book aggregates.
// The unit price is stored as an exact numeric column so monetary values
// survive the round trip without drift.
type BookDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title     string          `gorm:"not null"`
	Year      int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available int             `gorm:"not null"`
}

// TableName specifies the database table name for book entities.
func (BookDTO) TableName() string {
	return "books"
}

// fromDomain converts a book domain aggregate to its database representation.
func fromDomain(b *book.Book) BookDTO {
	return BookDTO{
		ID:        b.ID().Bytes(),
		Title:     b.Title(),
		Year:      b.Year(),
		Price:     b.Price().Decimal(),
		Available: b.Available(),
	}
}

// toDomain converts a database DTO to a book domain aggregate.
func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return book.RestoreBook(id, dto.Title, dto.Year, kernel.NewMoneyFromDecimal(dto.Price), dto.Available)
}
