// Package guard provides a lightweight mechanism to detect domain objects
// created via the zero value instead of their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so embedding a ConstructorGuard and setting it with
// NewConstructorGuard inside the constructor makes bypassing the constructor
// detectable.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created via NewConstructorGuard. For a
// zero-value guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError != nil {
		return validationError
	}
	return ErrDefaultConstructorGuard
}
