package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves every customer for the admin listing.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
// This is a parameterless query that fetches the complete customer list.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse represents customer information in the read model.
type GetAllCustomersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	City      string
	AvatarID  *kernel.UUID
	Active    bool
	CreatedAt time.Time
}
