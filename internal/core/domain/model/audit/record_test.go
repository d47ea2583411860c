package audit_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("should create record with valid parameters", func(t *testing.T) {
		recordID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		record, err := audit.NewRecord(
			recordID, audit.EntityTypeOrder, orderID, audit.ActionUpdateOrderStatus,
			map[string]any{"status": "Created"},
			map[string]any{"status": "Paid"},
			"admin@example.com")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.True(t, record.ID().IsEqual(recordID))
		assert.Equal(t, "order", record.EntityType())
		assert.True(t, record.EntityID().IsEqual(orderID))
		assert.Equal(t, "UPDATE_ORDER_STATUS", record.Action())
		assert.JSONEq(t, `{"status":"Created"}`, record.BeforeJSON())
		assert.JSONEq(t, `{"status":"Paid"}`, record.AfterJSON())
		assert.Equal(t, "admin@example.com", record.Actor())
		assert.False(t, record.OccurredAt().IsZero())
		require.NoError(t, record.Validate())
	})

	t.Run("should marshal nil snapshots as empty objects", func(t *testing.T) {
		record, err := audit.NewRecord(
			kernel.NewUUID(), audit.EntityTypeOrder, kernel.NewUUID(),
			audit.ActionUpdateOrderStatus, nil, nil, "system")

		require.NoError(t, err)
		assert.Equal(t, "{}", record.BeforeJSON())
		assert.Equal(t, "{}", record.AfterJSON())
	})

	t.Run("should return error with unconstructed record ID", func(t *testing.T) {
		var recordID kernel.UUID

		record, err := audit.NewRecord(
			recordID, audit.EntityTypeOrder, kernel.NewUUID(),
			audit.ActionUpdateOrderStatus, nil, nil, "system")

		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("should return error with empty entity type", func(t *testing.T) {
		_, err := audit.NewRecord(
			kernel.NewUUID(), "", kernel.NewUUID(),
			audit.ActionUpdateOrderStatus, nil, nil, "system")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entityType is required")
	})

	t.Run("should return error with unconstructed entity ID", func(t *testing.T) {
		var entityID kernel.UUID

		_, err := audit.NewRecord(
			kernel.NewUUID(), audit.EntityTypeOrder, entityID,
			audit.ActionUpdateOrderStatus, nil, nil, "system")

		require.Error(t, err)
	})

	t.Run("should return error with empty action", func(t *testing.T) {
		_, err := audit.NewRecord(
			kernel.NewUUID(), audit.EntityTypeOrder, kernel.NewUUID(), "", nil, nil, "system")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "action is required")
	})

	t.Run("should return error with empty actor", func(t *testing.T) {
		_, err := audit.NewRecord(
			kernel.NewUUID(), audit.EntityTypeOrder, kernel.NewUUID(),
			audit.ActionUpdateOrderStatus, nil, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor is required")
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should restore record with stored snapshots", func(t *testing.T) {
		recordID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		occurredAt := time.Date(2025, 4, 1, 16, 20, 0, 0, time.UTC)

		record, err := audit.RestoreRecord(
			recordID, audit.EntityTypeOrder, orderID, audit.ActionUpdateOrderStatus,
			`{"status":"Paid"}`, `{"status":"Cancelled"}`, "admin@example.com", occurredAt)

		require.NoError(t, err)
		assert.Equal(t, `{"status":"Paid"}`, record.BeforeJSON())
		assert.Equal(t, `{"status":"Cancelled"}`, record.AfterJSON())
		assert.Equal(t, occurredAt, record.OccurredAt())
		require.NoError(t, record.Validate())
	})

	t.Run("should return error with zero occurred at", func(t *testing.T) {
		_, err := audit.RestoreRecord(
			kernel.NewUUID(), audit.EntityTypeOrder, kernel.NewUUID(),
			audit.ActionUpdateOrderStatus, "{}", "{}", "system", time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "occurredAt is required")
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should reject nil record", func(t *testing.T) {
		var record *audit.Record

		err := record.Validate()

		require.Error(t, err)
		assert.Equal(t, audit.ErrRecordIsNotConstructed, err)
	})

	t.Run("should reject zero value record", func(t *testing.T) {
		record := &audit.Record{}

		err := record.Validate()

		require.Error(t, err)
		assert.Equal(t, audit.ErrRecordIsNotConstructed, err)
	})
}
