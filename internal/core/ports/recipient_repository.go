package ports

import (
	"context"

	"bookstore/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipients.
// Recipients are deduplicated by email, so the lookup is the only read the
// use cases need.
type RecipientRepository interface {
	// Add persists a new recipient entity to storage.
	Add(ctx context.Context, entity *recipient.Recipient) error

	// GetByEmail retrieves the recipient registered under the given email,
	// compared case-insensitively. Returns an ObjectNotFoundError when no
	// recipient exists for the email.
	GetByEmail(ctx context.Context, email string) (*recipient.Recipient, error)
}
