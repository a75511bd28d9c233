// Package guard provides the ConstructorGuard pattern used by domain objects,
// commands, and queries to ensure they are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed. Validation always fails with a meaningful message even if
// no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its proper
// constructor or as a zero value. Embedding a guard in a struct and checking
// it in Validate prevents accidental use of uninitialized objects and keeps
// domain invariants intact.
//
// Example usage:
//
//	var ErrRecipientNotConstructed = errors.New("Recipient must be created via NewRecipient")
//
//	type Recipient struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRecipient(name string) (Recipient, error) {
//	    if name == "" {
//	        return Recipient{}, errors.New("name is required")
//	    }
//	    return Recipient{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Recipient) Validate() error {
//	    return r.guard.Validate(ErrRecipientNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
