package account

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Role is the authorization level of an account.
type Role int

const (
	// Unknown represents an invalid or unset role.
	Unknown Role = iota
	// Admin can manage customers, products, orders and reports.
	Admin
	// User can place orders and see their own history.
	User
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown: "Unknown",
		Admin:   "admin",
		User:    "user",
	}
}

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		Admin: "admin",
		User:  "user",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(value string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == value {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", value))
}

// Validate returns an error when the role is not one of the known roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role. Roles are stored and
// carried in token claims in lowercase.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsAdmin reports whether the role grants administrator access.
func (r Role) IsAdmin() bool {
	return r == Admin
}
