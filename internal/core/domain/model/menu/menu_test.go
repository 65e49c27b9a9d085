package menu_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuProduct(t *testing.T, productID kernel.UUID, qty int64) menu.MenuProduct {
	t.Helper()

	quantity, err := kernel.NewQuantity(qty)
	require.NoError(t, err)

	mp, err := menu.NewMenuProduct(kernel.NewUUID(), productID, quantity)
	require.NoError(t, err)
	return mp
}

func TestNewMenu(t *testing.T) {
	price, _ := kernel.NewPrice(decimal.NewFromInt(19000))
	groupID := kernel.NewUUID()

	t.Run("should keep line items in request order", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		products := []menu.MenuProduct{
			newMenuProduct(t, first, 2),
			newMenuProduct(t, second, 1),
		}

		m, err := menu.NewMenu(kernel.NewUUID(), "two chickens", price, groupID, products)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		require.Len(t, m.Products(), 2)
		assert.True(t, m.Products()[0].ProductID().IsEqual(first))
		assert.Equal(t, int64(2), m.Products()[0].Quantity().Value())
		assert.True(t, m.Products()[1].ProductID().IsEqual(second))
		assert.True(t, m.MenuGroupID().IsEqual(groupID))
	})

	t.Run("should record created event", func(t *testing.T) {
		m, err := menu.NewMenu(kernel.NewUUID(), "single", price, groupID, nil)
		require.NoError(t, err)

		events := m.DomainEvents()

		require.Len(t, events, 1)
		created, ok := events[0].(menu.Created)
		require.True(t, ok)
		assert.Equal(t, menu.CreatedEventName, created.EventName())
		assert.Equal(t, m.ID().String(), created.MenuID)
		assert.Equal(t, "19000", created.Price)
	})

	t.Run("should reject zero-value line item", func(t *testing.T) {
		_, err := menu.NewMenu(kernel.NewUUID(), "broken", price, groupID, []menu.MenuProduct{{}})

		require.ErrorIs(t, err, menu.ErrMenuProductIsNotConstructed)
	})

	t.Run("should require name and menu group", func(t *testing.T) {
		var noGroup kernel.UUID

		_, err := menu.NewMenu(kernel.NewUUID(), "", price, noGroup, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "menu group id")
	})
}

func TestRestoreMenu(t *testing.T) {
	price, _ := kernel.NewPrice(decimal.Zero)

	m, err := menu.RestoreMenu(kernel.NewUUID(), "free", price, kernel.NewUUID(), nil)

	require.NoError(t, err)
	assert.Empty(t, m.DomainEvents())
}

func TestNewMenuProduct(t *testing.T) {
	var quantity kernel.Quantity

	_, err := menu.NewMenuProduct(kernel.NewUUID(), kernel.NewUUID(), quantity)

	require.ErrorIs(t, err, kernel.ErrQuantityIsNotConstructed)
}
