package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCustomerCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, accountID, "Maria Lopez", "maria@example.com", "555-0101", "Lima", "secret123")
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, accountID, cmd.AccountID())
	assert.Equal(t, "Maria Lopez", cmd.Name())
	assert.Equal(t, "maria@example.com", cmd.Email())
	assert.Equal(t, "555-0101", cmd.Phone())
	assert.Equal(t, "Lima", cmd.City())
	assert.Equal(t, "secret123", cmd.Password())
}

func TestNewRegisterCustomerCommand_NormalizesEmail(t *testing.T) {
	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), kernel.NewUUID(), "Maria Lopez", "  Maria@Example.COM ", "", "", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", cmd.Email())
}

func TestNewRegisterCustomerCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewRegisterCustomerCommand(invalidID, kernel.NewUUID(), "Maria Lopez", "maria@example.com", "", "", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterCustomerCommand_InvalidAccountID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), invalidID, "Maria Lopez", "maria@example.com", "", "", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterCustomerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), kernel.NewUUID(), "", "maria@example.com", "", "", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewRegisterCustomerCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), kernel.NewUUID(), "Maria Lopez", "", "", "", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestNewRegisterCustomerCommand_BlankEmail(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), kernel.NewUUID(), "Maria Lopez", "   ", "", "", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestNewRegisterCustomerCommand_EmptyPassword(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), kernel.NewUUID(), "Maria Lopez", "maria@example.com", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}

func TestRegisterCustomerCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.RegisterCustomerCommand{}
	require.Error(t, cmd.Validate())
}
