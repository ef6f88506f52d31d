// Package errs provides standardized error types for the quickbite
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error
//
// Domain-level failures (unknown order, unavailable menu item, and so on)
// are built on top of these types, which lets transport adapters map them
// to responses with errors.Is/errors.As instead of string matching.
package errs
