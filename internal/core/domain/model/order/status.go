package order

import (
	"fmt"
	"strings"

	"kitchenpos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order in the kitchen.
//
// State transitions:
//
//	Cooking ──┬──> Meal ──┬──> Completion
//	          │     │     │
//	          └─────┴─────┘
//	   (any active status may be set)
//
// Transitions between active statuses are not forced to be sequential. Completion
// is terminal: once reached, the status can no longer change.
//
// Status is persisted and exchanged by name (see String and ParseStatus).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status of every placed order.
	// The kitchen is preparing the food.
	Cooking

	// Meal indicates the food has been served and the guests are eating.
	Meal

	// Completion indicates the order is finished.
	// This is a final state with no further transitions allowed.
	Completion
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Cooking:    "COOKING",
		Meal:       "MEAL",
		Completion: "COMPLETION",
	}
}

// getValidStatuses returns the wire names accepted by ParseStatus.
func getValidStatuses() map[string]Status {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[string]Status{
		"COOKING":    Cooking,
		"MEAL":       Meal,
		"COMPLETION": Completion,
	}
}

// ParseStatus resolves a status by its wire name.
//
// Accepted names are COOKING, MEAL and COMPLETION. Matching ignores case and
// surrounding spaces.
//
// Returns:
//   - (status, nil) for an accepted name
//   - (Unknown, errs.ErrValueIsRequired) for a blank name
//   - (Unknown, errs.ErrValueIsInvalid) for any other name, including "UNKNOWN"
//
// Example:
//
//	status, err := order.ParseStatus("meal")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(status) // Output: MEAL
func ParseStatus(s string) (Status, error) {
	if strings.TrimSpace(s) == "" {
		return Unknown, errs.NewValueIsRequiredError("order status")
	}

	status, ok := getValidStatuses()[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%q is not a valid status", s),
		)
	}
	return status, nil
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Cooking, Meal, Completion.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - errs.ErrValueIsInvalid with details if the status is invalid
//
// Used to check values rebuilt from storage before they reach an aggregate.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "COOKING", "MEAL" or "COMPLETION" for valid statuses
//   - "UNKNOWN" for any other value
//
// This method implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
//
// Example:
//
//	fmt.Println(o.Status()) // Output: COOKING
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether an order in this status still blocks empty-state
// changes of its table.
//
// Returns:
//   - true for Cooking and Meal
//   - false for Completion
//
// Example:
//
//	if o.Status().IsActive() {
//	    return table.ErrTableHasActiveOrder
//	}
func (s Status) IsActive() bool {
	return s != Completion
}
