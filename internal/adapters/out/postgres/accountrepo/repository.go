package accountrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database. Inserting a duplicate email fails
// on the unique index.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByEmail retrieves an account by its normalized email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
