package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.deps.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponses(customers))
}

func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	customer, err := s.deps.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request createCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	customerID := kernel.NewUUID()

	command, err := commands.NewCreateCustomerCommand(customerID,
		request.Name, request.Email, request.Phone, request.City)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.CreateCustomer.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: customerID.String()})
}

func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid customer id")
	}

	var request updateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	command, err := commands.NewUpdateCustomerCommand(customerID,
		request.Name, request.Email, request.Phone, request.City, request.Active)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.UpdateCustomer.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid customer id")
	}

	command, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.DeleteCustomer.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadCustomerAvatar stores the uploaded file in media storage and links
// it to the customer, replacing any previous avatar.
func (s *Server) UploadCustomerAvatar(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid customer id")
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "failed to read avatar file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "failed to read avatar file")
	}

	fileID := kernel.NewUUID()

	command, err := commands.NewAttachCustomerAvatarCommand(customerID, fileID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.AttachCustomerAvatar.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, avatarResponse{AvatarID: fileID.String()})
}
