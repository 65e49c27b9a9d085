package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// MinQuantity is the smallest count a line item may carry.
const MinQuantity int64 = 1

var (
	// ErrInvalidQuantity is matched with errors.Is for counts below MinQuantity.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
	// Quantities must be created using QuantityFrom or NewQuantity.
	ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
		"quantity must be created via QuantityFrom or NewQuantity")
)

// Quantity is a positive count of a product within a menu or of a menu within an
// order. Quantity is an immutable value object; its zero value is invalid.
//
// Example:
//
//	qty, err := kernel.NewQuantity(2)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(qty.Value()) // Output: 2
type Quantity struct {
	value int64
	guard guard.ConstructorGuard
}

// QuantityFrom validates a raw count as received from a request, where the count
// may be absent.
//
// Parameters:
//   - raw: the requested count, nil when the caller did not send one
//
// Returns:
//   - Quantity: a valid quantity holding *raw
//   - error: errs.ErrValueIsRequired when raw is nil, errs.ErrValueIsInvalid
//     wrapping ErrInvalidQuantity when *raw is below MinQuantity
func QuantityFrom(raw *int64) (Quantity, error) {
	if raw == nil {
		return Quantity{}, errs.NewValueIsRequiredError("quantity")
	}

	if *raw < MinQuantity {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w: got %d", ErrInvalidQuantity, *raw),
		)
	}

	return Quantity{
		value: *raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewQuantity is QuantityFrom for counts that are known to be present. It fails
// only when value is below MinQuantity.
func NewQuantity(value int64) (Quantity, error) {
	return QuantityFrom(&value)
}

// Validate returns ErrQuantityIsNotConstructed for the zero value and nil for any
// Quantity built by QuantityFrom or NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the count. It is at least MinQuantity for a constructed Quantity.
func (q Quantity) Value() int64 {
	return q.value
}
