// Package errs provides standardized error types for the depot application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is out of bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidStateError: For when an entity's lifecycle state forbids an operation
//   - CapacityExceededError: For when a manifest's weight ceiling would be breached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The business kinds callers are expected to branch on with errors.Is are
// ErrValueIsInvalid/ErrValueIsRequired/ErrValueIsOutOfRange (malformed input),
// ErrInvalidState, ErrObjectNotFound, and ErrCapacityExceeded. Anything else
// that escapes a use case signals an operational problem, not a business-rule
// violation.
package errs
