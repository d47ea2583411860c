package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

// errorBody is the JSON payload returned for every failed request.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondStatus writes an error body with a fixed status and message.
func respondStatus(c echo.Context, status int, message string) error {
	return c.JSON(status, errorBody{Code: status, Message: message})
}

// respondBadRequest reports a request that failed validation before it
// reached a handler, typically a malformed body or path parameter.
func respondBadRequest(c echo.Context, err error) error {
	return respondStatus(c, http.StatusBadRequest, err.Error())
}

// respondError maps an error returned by a command or query handler onto an
// HTTP status. Unrecognized errors become a 500 with a generic message so
// internal details never leak into responses.
func respondError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	return respondStatus(c, status, message)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, queries.ErrInvalidCredentials),
		errors.Is(err, queries.ErrCredentialsAreRequired):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrProductNotAvailable),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
