package order_test

import (
	"testing"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	menuItemID := kernel.NewUUID()

	t.Run("should snapshot the menu item", func(t *testing.T) {
		item, err := order.NewLineItem(menuItemID, "Butter Chicken Burger", money(t, 189), "https://img/bcb", 3)

		require.NoError(t, err)
		assert.True(t, item.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, "Butter Chicken Burger", item.Name())
		assert.Equal(t, int64(189), item.UnitPrice().Amount())
		assert.Equal(t, "https://img/bcb", item.Image())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(567), item.Total().Amount())
	})

	t.Run("should reject quantities below one", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewLineItem(menuItemID, "x", money(t, 10), "", qty)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is less than 1")
		}
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, " ", money(t, 10), "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
