package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCustomerCommand represents an administrator request to create a customer.
// Contact details are optional; the customer starts active.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	city       string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the customer ID is valid and the name is not empty.
func NewCreateCustomerCommand(customerID kernel.UUID, name string,
	email string, phone string, city string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	command.email = email
	command.phone = phone
	command.city = city

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the optional contact email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the optional contact phone.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// City returns the optional city.
func (c CreateCustomerCommand) City() string {
	return c.city
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
