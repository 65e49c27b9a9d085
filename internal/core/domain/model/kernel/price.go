package kernel

import (
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrice is matched with errors.Is for negative prices.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via PriceFrom or NewPrice")
)

// Price is a non-negative monetary amount.
//
// Example:
//
//	amount := decimal.NewFromInt(5000)
//	price, err := kernel.PriceFrom(&amount)
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// PriceFrom validates a raw amount. A nil amount is treated as absent and fails
// with errs.ErrValueIsRequired; a negative amount fails with ErrInvalidPrice.
func PriceFrom(raw *decimal.Decimal) (Price, error) {
	if raw == nil {
		return Price{}, errs.NewValueIsRequiredError("price")
	}

	if raw.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%w: %s", ErrInvalidPrice, raw.String()),
		)
	}

	return Price{
		amount: *raw,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewPrice is PriceFrom for amounts that are known to be present.
func NewPrice(amount decimal.Decimal) (Price, error) {
	return PriceFrom(&amount)
}

// Validate returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the decimal amount, never negative for a constructed Price.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String formats the amount with two decimals.
//
// Example:
//
//	price, _ := kernel.NewPrice(decimal.NewFromInt(16000))
//	fmt.Println(price) // Output: 16000.00
func (p Price) String() string {
	return p.amount.StringFixed(2)
}
