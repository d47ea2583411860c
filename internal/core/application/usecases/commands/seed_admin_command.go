package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrSeedAdminCommandIsNotConstructed = errors.New(
	"SeedAdminCommand must be created via NewSeedAdminCommand constructor",
)

// SeedAdminCommand bootstraps the administrator account at startup.
// Running it against an existing admin email is a no-op, so the application
// can issue it on every start.
type SeedAdminCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewSeedAdminCommand creates a command to ensure the admin account exists.
func NewSeedAdminCommand(accountID kernel.UUID, email string, password string) (SeedAdminCommand, error) {
	command := SeedAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return SeedAdminCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedAdminCommand) Validate() error {
	return c.guard.Validate(ErrSeedAdminCommandIsNotConstructed)
}

// AccountID returns the identifier for the admin account if it gets created.
func (c SeedAdminCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Email returns the normalized admin email.
func (c SeedAdminCommand) Email() string {
	return c.email
}

// Password returns the plain text admin password to hash.
func (c SeedAdminCommand) Password() string {
	return c.password
}

func (c *SeedAdminCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *SeedAdminCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *SeedAdminCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
