package table

import "kitchenpos/internal/pkg/errs"

var (
	ErrTableIsGrouped = errs.NewRuleIsViolatedError(
		"a table belonging to a table group cannot change its empty state")

	ErrTableHasActiveOrder = errs.NewRuleIsViolatedError(
		"a table with an active order cannot change its empty state")

	ErrGuestChangeOnEmptyTable = errs.NewRuleIsViolatedError(
		"the number of guests of an empty table cannot change")
)
