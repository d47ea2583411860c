package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents an administrator request to edit a customer.
// The avatar reference is not part of the command; it is kept as stored.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	city       string
	active     bool

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to edit an existing customer.
func NewUpdateCustomerCommand(customerID kernel.UUID, name string,
	email string, phone string, city string, active bool) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	command.email = email
	command.phone = phone
	command.city = city
	command.active = active

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to edit.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new customer name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new contact email.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the new contact phone.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// City returns the new city.
func (c UpdateCustomerCommand) City() string {
	return c.city
}

// Active returns the new active flag.
func (c UpdateCustomerCommand) Active() bool {
	return c.active
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
