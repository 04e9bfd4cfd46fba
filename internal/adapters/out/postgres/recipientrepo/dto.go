// Package recipientrepo provides data transfer objects and mapping functions
// for recipient persistence. Recipients are looked up by email with a
// case-insensitive comparison, so repeat customers keep one record.
package recipientrepo

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipients.
// The email column carries a unique index; uniqueness across letter case is
// enforced by the case-insensitive lookup before insert.
type RecipientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email   string    `gorm:"not null;uniqueIndex"`
	Name    string    `gorm:"not null"`
	Phone   string
	Street  string
	City    string
	ZipCode string
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a recipient entity to its database representation.
func fromDomain(r *recipient.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:      r.ID().Bytes(),
		Email:   r.Email(),
		Name:    r.Name(),
		Phone:   r.Phone(),
		Street:  r.Street(),
		City:    r.City(),
		ZipCode: r.ZipCode(),
	}
}

// toDomain converts a database DTO to a recipient entity.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(id, dto.Email, dto.Name, dto.Phone, dto.Street, dto.City, dto.ZipCode)
}
