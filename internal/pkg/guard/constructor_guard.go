// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects so that zero values can be told apart from instances created through
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value is a zero value
// and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning value went through its constructor.
//
// Embed it as an unexported field and set it with NewConstructorGuard inside the constructor:
//
//	type DispatchShipmentCommand struct {
//	    shipmentID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c DispatchShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrDispatchShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
