// Package guard provides ConstructorGuard, embedded by aggregates, value objects
// and commands to tell values built by their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard, so a zero value means the
// enclosing struct bypassed its constructor.
//
//	type AddStockItemCommand struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c AddStockItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddStockItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
