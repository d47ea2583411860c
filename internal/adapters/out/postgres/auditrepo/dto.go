// Package auditrepo persists the append-only audit trail. Records are written
// through the unit of work so they commit atomically with the change they
// describe, and are read back through the query side only.
package auditrepo

import (
	"time"

	"backoffice/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// AuditRecordDTO represents the database structure for persisting audit records.
// The composite index serves the per-entity history lookup.
type AuditRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType string    `gorm:"type:varchar(64);not null;index:idx_audit_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity"`
	Action     string    `gorm:"type:varchar(64);not null"`
	BeforeJSON string    `gorm:"type:text"`
	AfterJSON  string    `gorm:"type:text"`
	Actor      string    `gorm:"type:varchar(255);not null"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for audit records.
// Overrides GORM's default naming convention to use "audit_records".
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

// fromDomain converts an audit record to its database representation.
// The trail is append-only, so no reverse mapping exists; history is read
// back through the query side.
func fromDomain(record *audit.Record) AuditRecordDTO {
	return AuditRecordDTO{
		ID:         record.ID().Bytes(),
		EntityType: record.EntityType(),
		EntityID:   record.EntityID().Bytes(),
		Action:     record.Action(),
		BeforeJSON: record.BeforeJSON(),
		AfterJSON:  record.AfterJSON(),
		Actor:      record.Actor(),
		OccurredAt: record.OccurredAt(),
	}
}
