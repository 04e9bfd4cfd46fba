// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its line item rows; the recipient and
// the referenced books live in their own tables and are rehydrated alongside
// the aggregate.
package orderrepo

import (
	"time"

	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/recipientrepo"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the abandoned-orders scan.
type OrderDTO struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID                   `gorm:"type:uuid;index;not null"`
	Recipient   *recipientrepo.RecipientDTO `gorm:"foreignKey:RecipientID"`
	Delivery    int                         `gorm:"not null"`
	Status      int                         `gorm:"index;not null"`
	CreatedAt   time.Time                   `gorm:"not null"`
	Items       []OrderItemDTO              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines keep their insertion order
// through the serial primary key.
type OrderItemDTO struct {
	ID       uint              `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID         `gorm:"type:uuid;index;not null"`
	BookID   uuid.UUID         `gorm:"type:uuid;not null"`
	Book     *bookrepo.BookDTO `gorm:"foreignKey:BookID"`
	Quantity int               `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation. The recipient and books are referenced by ID only; they are
// persisted through their own repositories.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  o.ID().Bytes(),
			BookID:   item.Book().ID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		RecipientID: o.Recipient().ID().Bytes(),
		Delivery:    int(o.Delivery()),
		Status:      int(o.Status()),
		CreatedAt:   o.CreatedAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate. Requires the
// Recipient and Items.Book associations to be preloaded. Lines referencing
// the same book share one aggregate instance, matching the write side, so
// stock mutations are applied once per book.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rcpt, err := recipientFromDTO(dto.Recipient)
	if err != nil {
		return nil, err
	}

	books := make(map[uuid.UUID]*book.Book)
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		b, ok := books[itemDTO.BookID]
		if !ok {
			b, err = bookFromDTO(itemDTO.Book)
			if err != nil {
				return nil, err
			}
			books[itemDTO.BookID] = b
		}

		item, itemErr := order.NewItem(b, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, rcpt, order.Delivery(dto.Delivery), items, order.Status(dto.Status), dto.CreatedAt)
}

func recipientFromDTO(dto *recipientrepo.RecipientDTO) (*recipient.Recipient, error) {
	if dto == nil {
		return nil, recipient.ErrRecipientIsNotConstructed
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(id, dto.Email, dto.Name, dto.Phone, dto.Street, dto.City, dto.ZipCode)
}

func bookFromDTO(dto *bookrepo.BookDTO) (*book.Book, error) {
	if dto == nil {
		return nil, book.ErrBookIsNotConstructed
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return book.RestoreBook(id, dto.Title, dto.Year, kernel.NewMoneyFromDecimal(dto.Price), dto.Available)
}
