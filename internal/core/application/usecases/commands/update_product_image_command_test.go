package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProductImageCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateProductImageCommand(id, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ProductID())
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, cmd.Image())
	assert.Equal(t, "image/jpeg", cmd.ContentType())
}

func TestNewUpdateProductImageCommand_EmptyContentTypeAllowed(t *testing.T) {
	cmd, err := commands.NewUpdateProductImageCommand(kernel.NewUUID(), []byte{0x01}, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.ContentType())
}

func TestNewUpdateProductImageCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewUpdateProductImageCommand(kernel.UUID{}, []byte{0x01}, "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateProductImageCommand_EmptyImage(t *testing.T) {
	_, err := commands.NewUpdateProductImageCommand(kernel.NewUUID(), nil, "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrImageDataIsRequired)
}

func TestUpdateProductImageCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.UpdateProductImageCommand{}
	require.Error(t, cmd.Validate())
}

func TestUpdateProductImageCommand_ImageReturnsCopy(t *testing.T) {
	data := []byte{0x01, 0x02}
	cmd, err := commands.NewUpdateProductImageCommand(kernel.NewUUID(), data, "image/png")
	require.NoError(t, err)

	leaked := cmd.Image()
	leaked[0] = 0xFF

	assert.Equal(t, []byte{0x01, 0x02}, cmd.Image())
}
