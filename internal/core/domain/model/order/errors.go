package order

import "kitchenpos/internal/pkg/errs"

var (
	ErrOrderLineItemsEmpty = errs.NewRuleIsViolatedError("an order must have at least one line item")

	ErrTableIsEmpty = errs.NewRuleIsViolatedError("an order cannot be created against an empty table")

	ErrOrderAlreadyCompleted = errs.NewRuleIsViolatedError("the status of a completed order cannot change")
)
