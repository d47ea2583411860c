package audit

import (
	"encoding/json"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through its constructor.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// EntityTypeOrder marks audit records written against orders.
const EntityTypeOrder = "order"

// ActionUpdateOrderStatus is the action recorded for accepted status transitions.
const ActionUpdateOrderStatus = "UPDATE_ORDER_STATUS"

// Record is an append-only audit trail entry. It captures which entity was
// touched, what happened, the state before and after as JSON snapshots, and
// who triggered the change. Records are never updated or deleted.
type Record struct {
	id         kernel.UUID
	entityType string
	entityID   kernel.UUID
	action     string
	beforeJSON string
	afterJSON  string
	actor      string
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates an audit record with the current UTC time. The before and
// after snapshots are marshalled to JSON; a nil snapshot becomes an empty
// JSON object.
func NewRecord(id kernel.UUID, entityType string, entityID kernel.UUID, action string,
	before map[string]any, after map[string]any, actor string) (*Record, error) {
	record := &Record{
		occurredAt: time.Now().UTC(),
	}

	err := errors.Join(
		record.setID(id),
		record.setEntityType(entityType),
		record.setEntityID(entityID),
		record.setAction(action),
		record.setBefore(before),
		record.setAfter(after),
		record.setActor(actor),
	)
	if err != nil {
		return nil, err
	}

	record.guard = guard.NewConstructorGuard()
	return record, nil
}

// RestoreRecord reconstructs an audit record from persisted state. The JSON
// snapshots are taken as stored.
func RestoreRecord(id kernel.UUID, entityType string, entityID kernel.UUID, action string,
	beforeJSON string, afterJSON string, actor string, occurredAt time.Time) (*Record, error) {
	record := &Record{
		beforeJSON: beforeJSON,
		afterJSON:  afterJSON,
	}

	err := errors.Join(
		record.setID(id),
		record.setEntityType(entityType),
		record.setEntityID(entityID),
		record.setAction(action),
		record.setActor(actor),
		record.setOccurredAt(occurredAt),
	)
	if err != nil {
		return nil, err
	}

	record.guard = guard.NewConstructorGuard()
	return record, nil
}

// Validate checks that the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// EntityType returns the kind of entity the record is about.
func (r *Record) EntityType() string {
	return r.entityType
}

// EntityID returns the identifier of the audited entity.
func (r *Record) EntityID() kernel.UUID {
	return r.entityID
}

// Action returns the recorded action name.
func (r *Record) Action() string {
	return r.action
}

// BeforeJSON returns the JSON snapshot of the state before the change.
func (r *Record) BeforeJSON() string {
	return r.beforeJSON
}

// AfterJSON returns the JSON snapshot of the state after the change.
func (r *Record) AfterJSON() string {
	return r.afterJSON
}

// Actor returns who triggered the change, an account email or "system".
func (r *Record) Actor() string {
	return r.actor
}

// OccurredAt returns when the change happened.
func (r *Record) OccurredAt() time.Time {
	return r.occurredAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType is required")
	}
	r.entityType = entityType
	return nil
}

func (r *Record) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	r.entityID = entityID
	return nil
}

func (r *Record) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action is required")
	}
	r.action = action
	return nil
}

func (r *Record) setBefore(before map[string]any) error {
	snapshot, err := marshalSnapshot(before)
	if err != nil {
		return err
	}
	r.beforeJSON = snapshot
	return nil
}

func (r *Record) setAfter(after map[string]any) error {
	snapshot, err := marshalSnapshot(after)
	if err != nil {
		return err
	}
	r.afterJSON = snapshot
	return nil
}

func (r *Record) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor is required")
	}
	r.actor = actor
	return nil
}

func (r *Record) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt is required")
	}
	r.occurredAt = occurredAt
	return nil
}

func marshalSnapshot(snapshot map[string]any) (string, error) {
	if snapshot == nil {
		snapshot = map[string]any{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}
	return string(data), nil
}
