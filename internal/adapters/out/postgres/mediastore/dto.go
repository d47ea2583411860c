// Package mediastore persists uploaded binary files such as customer avatars.
// File bytes are kept in the database so media joins the same transaction as
// the aggregate referencing it.
package mediastore

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/media"

	"github.com/google/uuid"
)

// MediaFileDTO represents the database structure for persisting uploaded files.
type MediaFileDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(128);not null"`
	Data        []byte    `gorm:"type:bytea;not null"`
	UploadedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for media files.
// Overrides GORM's default naming convention to use "media_files".
func (MediaFileDTO) TableName() string {
	return "media_files"
}

// fromDomain converts a file domain aggregate to its database representation.
func fromDomain(file *media.File) MediaFileDTO {
	return MediaFileDTO{
		ID:          file.ID().Bytes(),
		FileName:    file.FileName(),
		ContentType: file.ContentType(),
		Data:        file.Data(),
		UploadedAt:  file.UploadedAt(),
	}
}

// toDomain converts a database DTO to a file domain aggregate.
func toDomain(dto MediaFileDTO) (*media.File, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return media.RestoreFile(id, dto.FileName, dto.ContentType, dto.Data, dto.UploadedAt)
}
