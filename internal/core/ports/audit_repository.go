package ports

import (
	"context"

	"backoffice/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for audit records.
// The trail is append-only; records are read back through the query side.
type AuditRepository interface {
	// Add appends an audit record.
	Add(ctx context.Context, record *audit.Record) error
}
