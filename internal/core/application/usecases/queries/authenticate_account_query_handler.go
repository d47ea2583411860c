package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateAccountQueryHandler verifies login credentials against the
// accounts table. Unknown emails and wrong passwords both come back as
// ErrInvalidCredentials.
type AuthenticateAccountQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateAccountQueryHandler creates a handler for login queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateAccountQueryHandler(db *gorm.DB) AuthenticateAccountQueryHandler {
	return AuthenticateAccountQueryHandler{db: db}
}

// Handle executes the login check. The stored bcrypt hash is compared through
// the account aggregate, so the hashing scheme lives in one place.
func (h AuthenticateAccountQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAccountQuery,
) (AuthenticateAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			password_hash,
			role,
			customer_id,
			created_at
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id           uuid.UUID
		email        string
		passwordHash string
		role         int
		customerID   uuid.NullUUID
		createdAt    time.Time
	)

	err := row.Scan(&id, &email, &passwordHash, &role, &customerID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateAccountQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	var linkedCustomerID *kernel.UUID
	if customerID.Valid {
		linkedID, idErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if idErr != nil {
			return AuthenticateAccountQueryResponse{}, idErr
		}
		linkedCustomerID = &linkedID
	}

	aggregate, err := account.RestoreAccount(
		accountID, email, passwordHash, account.Role(role), linkedCustomerID, createdAt)
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	if !aggregate.VerifyPassword(query.Password()) {
		return AuthenticateAccountQueryResponse{}, ErrInvalidCredentials
	}

	return AuthenticateAccountQueryResponse{
		AccountID:  aggregate.ID(),
		Email:      aggregate.Email(),
		Role:       aggregate.Role(),
		CustomerID: aggregate.CustomerID(),
	}, nil
}
