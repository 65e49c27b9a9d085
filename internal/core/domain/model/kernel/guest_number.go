package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	// ErrInvalidGuestNumber is matched with errors.Is for negative guest counts.
	ErrInvalidGuestNumber = errors.New("guest number must not be negative")

	// ErrGuestNumberIsNotConstructed is returned when validating a zero-value GuestNumber.
	// Guest numbers must be created using GuestNumberFrom or NewGuestNumber.
	ErrGuestNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"guest number must be created via GuestNumberFrom or NewGuestNumber")
)

// GuestNumber is the non-negative count of guests seated at a table. Zero is a
// valid count. GuestNumber is an immutable value object; its zero value is invalid.
//
// Example:
//
//	guests, err := kernel.NewGuestNumber(4)
//	if err != nil {
//	    // Handle validation error
//	}
//	err = tbl.ChangeGuestNumber(guests)
type GuestNumber struct {
	value int
	guard guard.ConstructorGuard
}

// GuestNumberFrom validates a raw guest count as received from a request, where
// the count may be absent.
//
// Parameters:
//   - raw: the requested count, nil when the caller did not send one
//
// Returns:
//   - GuestNumber: a valid guest number holding *raw
//   - error: errs.ErrValueIsRequired when raw is nil, errs.ErrValueIsInvalid
//     wrapping ErrInvalidGuestNumber when *raw is negative
func GuestNumberFrom(raw *int) (GuestNumber, error) {
	if raw == nil {
		return GuestNumber{}, errs.NewValueIsRequiredError("guest number")
	}

	if *raw < 0 {
		return GuestNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"guest number",
			fmt.Errorf("%w: got %d", ErrInvalidGuestNumber, *raw),
		)
	}

	return GuestNumber{
		value: *raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewGuestNumber is GuestNumberFrom for counts that are known to be present. It
// fails only when value is negative.
func NewGuestNumber(value int) (GuestNumber, error) {
	return GuestNumberFrom(&value)
}

// Validate returns ErrGuestNumberIsNotConstructed for the zero value and nil for
// any GuestNumber built by GuestNumberFrom or NewGuestNumber.
func (g GuestNumber) Validate() error {
	return g.guard.Validate(ErrGuestNumberIsNotConstructed)
}

// Value returns the guest count, never negative for a constructed GuestNumber.
func (g GuestNumber) Value() int {
	return g.value
}
