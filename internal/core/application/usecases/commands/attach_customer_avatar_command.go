package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrAttachCustomerAvatarCommandIsNotConstructed = errors.New(
		"AttachCustomerAvatarCommand must be created via NewAttachCustomerAvatarCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileDataIsRequired = errors.New("file data is required")
)

// AttachCustomerAvatarCommand represents an avatar upload for a customer.
// The bytes go into the media store and the customer is linked to them.
type AttachCustomerAvatarCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	fileID      kernel.UUID
	fileName    string
	contentType string
	data        []byte

	guard guard.ConstructorGuard
}

// NewAttachCustomerAvatarCommand creates a command to upload a customer avatar.
func NewAttachCustomerAvatarCommand(customerID kernel.UUID, fileID kernel.UUID,
	fileName string, contentType string, data []byte) (AttachCustomerAvatarCommand, error) {
	command := AttachCustomerAvatarCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFileID(fileID),
		command.setFileName(fileName),
		command.setData(data),
	); err != nil {
		return AttachCustomerAvatarCommand{}, err
	}

	command.contentType = contentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachCustomerAvatarCommand) Validate() error {
	return c.guard.Validate(ErrAttachCustomerAvatarCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer receiving the avatar.
func (c AttachCustomerAvatarCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FileID returns the identifier for the new media file.
func (c AttachCustomerAvatarCommand) FileID() kernel.UUID {
	return c.fileID
}

// FileName returns the upload name.
func (c AttachCustomerAvatarCommand) FileName() string {
	return c.fileName
}

// ContentType returns the MIME type of the upload, possibly empty.
func (c AttachCustomerAvatarCommand) ContentType() string {
	return c.contentType
}

// Data returns the uploaded bytes.
func (c AttachCustomerAvatarCommand) Data() []byte {
	return append([]byte(nil), c.data...)
}

func (c *AttachCustomerAvatarCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AttachCustomerAvatarCommand) setFileID(fileID kernel.UUID) error {
	if err := fileID.Validate(); err != nil {
		return err
	}

	c.fileID = fileID
	return nil
}

func (c *AttachCustomerAvatarCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}

func (c *AttachCustomerAvatarCommand) setData(data []byte) error {
	if len(data) == 0 {
		return ErrFileDataIsRequired
	}

	c.data = append([]byte(nil), data...)
	return nil
}
