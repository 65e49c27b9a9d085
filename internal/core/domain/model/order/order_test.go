package order_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, menuID kernel.UUID, qty int64) order.OrderLineItem {
	t.Helper()

	quantity, err := kernel.NewQuantity(qty)
	require.NoError(t, err)

	li, err := order.NewOrderLineItem(kernel.NewUUID(), menuID, quantity)
	require.NoError(t, err)
	return li
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.OrderLineItem{lineItem(t, kernel.NewUUID(), 1)}, time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	tableID := kernel.NewUUID()
	now := time.Now()

	t.Run("should start cooking with line items in order", func(t *testing.T) {
		menuID := kernel.NewUUID()
		items := []order.OrderLineItem{lineItem(t, menuID, 1), lineItem(t, menuID, 3)}

		o, err := order.NewOrder(kernel.NewUUID(), tableID, items, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Cooking, o.Status())
		assert.True(t, o.IsActive())
		assert.True(t, o.OrderTableID().IsEqual(tableID))
		assert.Equal(t, now, o.OrderedTime())
		require.Len(t, o.LineItems(), 2)
		assert.Equal(t, int64(3), o.LineItems()[1].Quantity().Value())
	})

	t.Run("should record placed event", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), tableID,
			[]order.OrderLineItem{lineItem(t, kernel.NewUUID(), 2)}, now)
		require.NoError(t, err)

		events := o.DomainEvents()

		require.Len(t, events, 1)
		placed, ok := events[0].(order.Placed)
		require.True(t, ok)
		assert.Equal(t, order.PlacedEventName, placed.EventName())
		assert.Equal(t, "COOKING", placed.Status)
		require.Len(t, placed.LineItems, 1)
		assert.Equal(t, int64(2), placed.LineItems[0].Quantity)
	})

	t.Run("should reject empty line items before other checks", func(t *testing.T) {
		var noID kernel.UUID

		o, err := order.NewOrder(noID, noID, nil, time.Time{})

		require.ErrorIs(t, err, order.ErrOrderLineItemsEmpty)
		require.ErrorIs(t, err, errs.ErrRuleIsViolated)
		assert.Nil(t, o)
	})

	t.Run("should join construction failures", func(t *testing.T) {
		var noID kernel.UUID

		_, err := order.NewOrder(noID, noID, []order.OrderLineItem{lineItem(t, kernel.NewUUID(), 1)}, time.Time{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "order table id")
		assert.Contains(t, err.Error(), "ordered time")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should move through meal to completion", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.ChangeStatus(order.Meal))
		assert.Equal(t, order.Meal, o.Status())

		require.NoError(t, o.ChangeStatus(order.Completion))
		assert.Equal(t, order.Completion, o.Status())
		assert.False(t, o.IsActive())

		events := o.DomainEvents()
		require.Len(t, events, 2)
		last, ok := events[1].(order.StatusChanged)
		require.True(t, ok)
		assert.Equal(t, "MEAL", last.PreviousStatus)
		assert.Equal(t, "COMPLETION", last.Status)
	})

	t.Run("should allow skipping and going back while active", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.ChangeStatus(order.Meal))
		require.NoError(t, o.ChangeStatus(order.Cooking))
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("should reject any change after completion", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Completion))

		for _, next := range []order.Status{order.Cooking, order.Meal, order.Completion} {
			err := o.ChangeStatus(next)

			require.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
		}
		assert.Equal(t, order.Completion, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o := placedOrder(t)

		err := o.ChangeStatus(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("should keep line items untouched", func(t *testing.T) {
		o := placedOrder(t)
		before := o.LineItems()

		require.NoError(t, o.ChangeStatus(order.Meal))

		assert.Equal(t, before, o.LineItems())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild completed order without events", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Completion, time.Now(),
			[]order.OrderLineItem{lineItem(t, kernel.NewUUID(), 1)})

		require.NoError(t, err)
		assert.False(t, o.IsActive())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order

	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
