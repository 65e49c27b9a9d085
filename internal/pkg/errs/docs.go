// Package errs provides standardized error types for the kitchenpos application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types grouped by the kind of failure:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//     failures detected before any persistence side effect
//   - ObjectNotFoundError: a referenced object does not exist
//   - RuleIsViolatedError: an operation rejected by a business rule given the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Is() method so errors.Is also matches the cause chain
//
// Callers classify errors with errors.Is against the sentinels, which is how the
// HTTP adapter maps them to status codes.
package errs
