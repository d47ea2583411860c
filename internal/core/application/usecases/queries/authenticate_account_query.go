// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrAuthenticateAccountQueryIsNotConstructed = errors.New(
		"AuthenticateAccountQuery must be created via NewAuthenticateAccountQuery constructor",
	)

	// ErrInvalidCredentials is returned for unknown emails and wrong passwords
	// alike, so a caller cannot probe which emails have accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateAccountQuery checks a login attempt against the stored
// password hash.
//
// Example:
//
//	query, err := NewAuthenticateAccountQuery("maria@example.com", "secret123")
//	if err != nil {
//	    return err
//	}
//
//	identity, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrInvalidCredentials) {
//	    // reject the login
//	}
type AuthenticateAccountQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAccountQuery creates a login query. The email is normalized
// the same way registration normalizes it.
func NewAuthenticateAccountQuery(email string, password string) (AuthenticateAccountQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateAccountQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateAccountQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateAccountQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAccountQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateAccountQuery) Email() string {
	return q.email
}

// Password returns the plain text password to verify.
func (q AuthenticateAccountQuery) Password() string {
	return q.password
}

// AuthenticateAccountQueryResponse carries the identity claims of a verified
// login, ready to be embedded in a token.
type AuthenticateAccountQueryResponse struct {
	AccountID  kernel.UUID
	Email      string
	Role       account.Role
	CustomerID *kernel.UUID
}
