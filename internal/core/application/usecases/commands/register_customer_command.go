package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterCustomerCommand represents a self registration request. It creates
// a customer profile and a user-role login account for it in one step.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand(
//	    kernel.NewUUID(), kernel.NewUUID(),
//	    "Maria Lopez", "maria@example.com", "555-0101", "Lima", "secret123")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrEmailAlreadyRegistered) {
//	    // tell the caller to pick another email
//	}
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	accountID  kernel.UUID
	name       string
	email      string
	phone      string
	city       string
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer with a
// login account. Name, email and password are mandatory; the email is trimmed
// and lowercased so lookups are case insensitive.
func NewRegisterCustomerCommand(customerID kernel.UUID, accountID kernel.UUID,
	name string, email string, phone string, city string, password string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setAccountID(accountID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	command.phone = phone
	command.city = city

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer profile.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccountID returns the identifier for the new login account.
func (c RegisterCustomerCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the customer name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the normalized login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the optional contact phone.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// City returns the optional city.
func (c RegisterCustomerCommand) City() string {
	return c.city
}

// Password returns the plain text password to hash.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
