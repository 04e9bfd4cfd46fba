package recipientrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/recipient"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements RecipientRepository using GORM.
type GormRecipientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipientRepository {
	return &GormRecipientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recipient to the database.
func (r *GormRecipientRepository) Add(ctx context.Context, entity *recipient.Recipient) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetByEmail retrieves the recipient registered under the given email.
// The comparison is case-insensitive.
func (r *GormRecipientRepository) GetByEmail(ctx context.Context, email string) (*recipient.Recipient, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "lower(email) = lower(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
