package account

import (
	"errors"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// ErrAccountIsNotConstructed is returned when an Account was not created through its constructor.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the aggregate root for a login identity.
//
// Emails are normalized to lowercase and act as the unique login name. The
// password is held only as a bcrypt hash. A user-role account is linked to
// the customer it was registered for; admin accounts have no customer link.
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	customerID   *kernel.UUID
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates an account from a plain text password, hashing it with
// bcrypt at the default cost. The email is trimmed and lowercased.
func NewAccount(id kernel.UUID, email string, password string,
	role Role, customerID *kernel.UUID) (*Account, error) {
	account := &Account{
		createdAt: time.Now().UTC(),
	}

	err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setPassword(password),
		account.setRole(role),
		account.setCustomerID(customerID),
	)
	if err != nil {
		return nil, err
	}

	account.guard = guard.NewConstructorGuard()
	return account, nil
}

// RestoreAccount reconstructs an account from persisted state. The password
// hash is taken as stored, not rehashed.
func RestoreAccount(id kernel.UUID, email string, passwordHash string,
	role Role, customerID *kernel.UUID, createdAt time.Time) (*Account, error) {
	account := &Account{}

	err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setPasswordHash(passwordHash),
		account.setRole(role),
		account.setCustomerID(customerID),
		account.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}

	account.guard = guard.NewConstructorGuard()
	return account, nil
}

// Validate checks that the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares accounts by identity.
func (a *Account) IsEqual(other *Account) bool {
	if a == nil || other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the normalized login email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account role.
func (a *Account) Role() Role {
	return a.role
}

// CustomerID returns the linked customer, or nil for accounts without one.
func (a *Account) CustomerID() *kernel.UUID {
	return a.customerID
}

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// VerifyPassword reports whether the plain text password matches the stored
// bcrypt hash.
func (a *Account) VerifyPassword(password string) bool {
	if a == nil || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email is required")
	}
	a.email = email
	return nil
}

func (a *Account) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	a.passwordHash = string(hash)
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash is required")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	id := *customerID
	a.customerID = &id
	return nil
}

func (a *Account) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	a.createdAt = createdAt
	return nil
}
