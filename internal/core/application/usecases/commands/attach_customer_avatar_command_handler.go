package commands

import (
	"context"

	"backoffice/internal/core/domain/model/media"
)

// AttachCustomerAvatarCommandHandler handles avatar uploads.
// File storage and the customer link are written in one transaction.
type AttachCustomerAvatarCommandHandler struct {
	uowFactory AvatarUoWFactory
}

// NewAttachCustomerAvatarCommandHandler creates a handler for avatar uploads.
func NewAttachCustomerAvatarCommandHandler(uowFactory AvatarUoWFactory) AttachCustomerAvatarCommandHandler {
	return AttachCustomerAvatarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the avatar upload command.
// Stores the file, then points the customer avatar reference at it. The
// previous avatar file, if any, stays in the store but is no longer linked.
func (h AttachCustomerAvatarCommandHandler) Handle(ctx context.Context, command AttachCustomerAvatarCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	file, err := media.NewFile(command.FileID(), command.FileName(), command.ContentType(), command.Data())
	if err != nil {
		return err
	}

	if err = uow.MediaStore().Add(ctx, file); err != nil {
		return err
	}

	if err = aggregate.AttachAvatar(file.ID()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
