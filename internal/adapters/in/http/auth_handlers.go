package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
)

// Register creates a customer profile with a linked user account and logs
// the new account in, returning a token the client can use right away.
func (s *Server) Register(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	customerID := kernel.NewUUID()
	accountID := kernel.NewUUID()

	command, err := commands.NewRegisterCustomerCommand(customerID, accountID,
		request.Name, request.Email, request.Phone, request.City, request.Password)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.deps.RegisterCustomer.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	identity := Identity{
		AccountID:  accountID,
		Email:      command.Email(),
		Role:       account.User,
		CustomerID: &customerID,
	}

	token, err := s.deps.TokenIssuer.Issue(identity, time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	customerIDValue := customerID.String()
	return ctx.JSON(http.StatusCreated, tokenResponse{
		Token:      token,
		Role:       account.User.String(),
		AccountID:  accountID.String(),
		CustomerID: &customerIDValue,
	})
}

// Login verifies credentials and returns a signed bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondStatus(ctx, http.StatusBadRequest, "invalid request body")
	}

	query, err := queries.NewAuthenticateAccountQuery(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.AuthenticateAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	identity := Identity{
		AccountID:  result.AccountID,
		Email:      result.Email,
		Role:       result.Role,
		CustomerID: result.CustomerID,
	}

	token, err := s.deps.TokenIssuer.Issue(identity, time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	response := tokenResponse{
		Token:     token,
		Role:      result.Role.String(),
		AccountID: result.AccountID.String(),
	}
	if result.CustomerID != nil {
		customerIDValue := result.CustomerID.String()
		response.CustomerID = &customerIDValue
	}

	return ctx.JSON(http.StatusOK, response)
}
