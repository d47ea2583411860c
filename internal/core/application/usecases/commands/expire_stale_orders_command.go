package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand triggers cancellation of orders that stayed in
// Created status past the payment window. Issued periodically by the expiry
// job.
type ExpireStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to sweep stale orders.
// This is a parameterless command; the payment window lives on the handler.
func NewExpireStaleOrdersCommand() ExpireStaleOrdersCommand {
	command := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}
