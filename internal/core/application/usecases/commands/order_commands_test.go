package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	menuID := kernel.NewUUID()
	other := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []commands.OrderLineItemInput{
		{MenuID: menuID, Quantity: ptr(int64(1))},
		{MenuID: other, Quantity: ptr(int64(2))},
		{MenuID: menuID, Quantity: ptr(int64(3))},
	})

	require.NoError(t, err)
	require.Len(t, cmd.LineItems(), 3)
	assert.Equal(t, int64(3), cmd.LineItems()[2].Quantity.Value())
	assert.Equal(t, []kernel.UUID{menuID, other}, cmd.MenuIDs())
}

func TestNewCreateOrderCommand_EmptyLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

	require.ErrorIs(t, err, order.ErrOrderLineItemsEmpty)
	require.ErrorIs(t, err, errs.ErrRuleIsViolated)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []commands.OrderLineItemInput{
		{MenuID: kernel.NewUUID(), Quantity: ptr(int64(0))},
	})

	require.ErrorIs(t, err, kernel.ErrInvalidQuantity)
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, []commands.OrderLineItemInput{
		{MenuID: kernel.UUID{}, Quantity: ptr(int64(1))},
	})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Contains(t, err.Error(), "order line item 0")
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should parse status", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "MEAL")

		require.NoError(t, err)
		assert.Equal(t, order.Meal, cmd.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "EATING")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
