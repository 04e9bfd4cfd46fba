// Package recipient provides the recipient entity for the bookstore system.
//
// A recipient is identified by email, compared case-insensitively. The entity
// is created on the first order from a new email and shared by reference
// across all subsequent orders from the same address; orders never copy it.
package recipient

import (
	"errors"
	"strings"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrRecipientIsNotConstructed is returned when a Recipient instance was not
// created through the NewRecipient or RestoreRecipient factory methods.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient or RestoreRecipient constructor")

// Recipient holds the contact and shipping details of the person an order is
// delivered to. Email is the natural identity: two recipients with the same
// email, regardless of case, are the same person.
type Recipient struct {
	id      kernel.UUID
	email   string
	name    string
	phone   string
	street  string
	city    string
	zipCode string

	isConstructed bool
}

// NewRecipient creates a Recipient with validation. Email and name are
// required; phone and address fields are optional.
func NewRecipient(id kernel.UUID, email, name, phone, street, city, zipCode string) (*Recipient, error) {
	r := &Recipient{
		phone:         phone,
		street:        street,
		city:          city,
		zipCode:       zipCode,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setEmail(email),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient reconstructs a Recipient from persistence with the same
// validation as NewRecipient.
func RestoreRecipient(id kernel.UUID, email, name, phone, street, city, zipCode string) (*Recipient, error) {
	return NewRecipient(id, email, name, phone, street, city, zipCode)
}

// Validate ensures the Recipient was created through a constructor.
func (r *Recipient) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipientIsNotConstructed
	}

	return nil
}

// IsEqual compares two recipients by their unique identifiers.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Email returns the recipient's email address.
func (r *Recipient) Email() string {
	return r.email
}

// Name returns the recipient's full name.
func (r *Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's phone number.
func (r *Recipient) Phone() string {
	return r.phone
}

// Street returns the street line of the delivery address.
func (r *Recipient) Street() string {
	return r.street
}

// City returns the city of the delivery address.
func (r *Recipient) City() string {
	return r.city
}

// ZipCode returns the postal code of the delivery address.
func (r *Recipient) ZipCode() string {
	return r.zipCode
}

// EmailEquals reports whether the given email identifies this recipient.
// The comparison is case-insensitive.
func (r *Recipient) EmailEquals(email string) bool {
	return strings.EqualFold(r.email, email)
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	r.email = email
	return nil
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
