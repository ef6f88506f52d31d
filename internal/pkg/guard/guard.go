// Package guard implements the constructor guard pattern used by commands,
// queries, and value objects. Embedding a ConstructorGuard in a struct makes
// it possible to detect zero-value instances that bypassed the designated
// constructor, so handlers can reject them before doing any work.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// reports the object as not constructed.
//
// Example:
//
//	type GetOrderQuery struct {
//	    id    kernel.OrderID
//	    guard ConstructorGuard
//	}
//
//	func NewGetOrderQuery(id kernel.OrderID) (GetOrderQuery, error) {
//	    if err := id.Validate(); err != nil {
//	        return GetOrderQuery{}, err
//	    }
//	    return GetOrderQuery{id: id, guard: NewConstructorGuard()}, nil
//	}
//
//	func (q GetOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as constructed.
// Call it inside the holder's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
