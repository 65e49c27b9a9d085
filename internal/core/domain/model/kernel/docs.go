// Package kernel provides the shared domain primitives of kitchenpos.
//
// The package includes:
//   - UUID: the opaque identity of every entity
//   - Price: a non-negative decimal amount
//   - Quantity: a positive count of items in a line
//   - GuestNumber: a non-negative count of guests at a table
//
// Each value object is immutable and built only through its factory. Factories
// that take a pointer treat nil as an absent input and fail with
// errs.ErrValueIsRequired; present but out-of-domain input fails with
// errs.ErrValueIsInvalid wrapping a kind-specific sentinel (ErrInvalidPrice,
// ErrInvalidQuantity, ErrInvalidGuestNumber).
package kernel
