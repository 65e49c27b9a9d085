package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()
	price, err := kernel.NewPrice(decimal.NewFromInt(16000))
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "fried chicken", price)
	require.NoError(t, err)
	return p
}

func newTestMenuGroup(t *testing.T) *menugroup.MenuGroup {
	t.Helper()
	g, err := menugroup.NewMenuGroup(kernel.NewUUID(), "chicken sets")
	require.NoError(t, err)
	return g
}

func newTestTable(t *testing.T, guestNumber int, empty bool) *table.OrderTable {
	t.Helper()
	g, err := kernel.NewGuestNumber(guestNumber)
	require.NoError(t, err)
	tbl, err := table.NewOrderTable(kernel.NewUUID(), g, empty)
	require.NoError(t, err)
	return tbl
}

func newGroupedTestTable(t *testing.T) *table.OrderTable {
	t.Helper()
	g, err := kernel.NewGuestNumber(2)
	require.NoError(t, err)
	groupID := kernel.NewUUID()
	tbl, err := table.RestoreOrderTable(kernel.NewUUID(), &groupID, g, false)
	require.NoError(t, err)
	return tbl
}

func newTestOrder(t *testing.T, tableID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	li, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), qty)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), tableID, status, time.Now(), []order.OrderLineItem{li})
	require.NoError(t, err)
	return o
}
