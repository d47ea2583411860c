package mediastore

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/media"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMediaStore implements MediaStore using GORM.
type GormMediaStore struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMediaStore creates a new GORM media store.
func NewGormMediaStore(db *gorm.DB, tracker aggregateTracker) *GormMediaStore {
	return &GormMediaStore{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new file to the database.
func (s *GormMediaStore) Add(ctx context.Context, file *media.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	dto := fromDomain(file)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	s.tracker.TrackAggregate(file.ID(), file)
	return nil
}

// Get retrieves a file by ID.
func (s *GormMediaStore) Get(ctx context.Context, id kernel.UUID) (*media.File, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MediaFileDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("media file", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
