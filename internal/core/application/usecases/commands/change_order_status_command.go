package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The actor is recorded in the audit trail; it is an
// account email or "system" for job-driven transitions.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Cancelled, "admin@example.com")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrInvalidStatusTransition) {
//	    // the lifecycle table rejected the move
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, newStatus order.Status,
	actor string) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
		command.setActor(actor),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns who requested the transition.
func (c ChangeOrderStatusCommand) Actor() string {
	return c.actor
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
