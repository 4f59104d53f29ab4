package order_test

import (
	"testing"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, name string, price int64, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, money(t, price), "https://img/"+name, qty)
	require.NoError(t, err)
	return item
}

func TestComputeTotals(t *testing.T) {
	t.Run("two of a 100 item with a 25 fee", func(t *testing.T) {
		totals := order.ComputeTotals([]order.LineItem{lineItem(t, "Big McDonut", 100, 2)}, money(t, 25))

		assert.Equal(t, int64(200), totals.TotalAmount.Amount())
		assert.Equal(t, int64(25), totals.DeliveryFee.Amount())
		assert.Equal(t, int64(10), totals.Tax.Amount())
		assert.Equal(t, int64(235), totals.FinalAmount.Amount())
	})

	t.Run("tax rounds to the nearest unit", func(t *testing.T) {
		// 89 + 129*2 + 149 = 496, 5% = 24.8
		items := []order.LineItem{
			lineItem(t, "Fries with Extra Regret", 89, 1),
			lineItem(t, "Shake of Shame", 129, 2),
			lineItem(t, "Big McDonut", 149, 1),
		}
		totals := order.ComputeTotals(items, money(t, 20))

		assert.Equal(t, int64(496), totals.TotalAmount.Amount())
		assert.Equal(t, int64(25), totals.Tax.Amount())
		assert.Equal(t, int64(541), totals.FinalAmount.Amount())

		half := order.ComputeTotals([]order.LineItem{lineItem(t, "Chai", 10, 1)}, kernel.ZeroMoney)
		assert.Equal(t, int64(1), half.Tax.Amount())
	})

	t.Run("totals hold for arbitrary carts", func(t *testing.T) {
		for price := int64(1); price <= 300; price += 37 {
			for qty := 1; qty <= 5; qty++ {
				items := []order.LineItem{lineItem(t, "a", price, qty), lineItem(t, "b", price+3, 1)}
				totals := order.ComputeTotals(items, money(t, 25))

				var sum int64
				for _, item := range items {
					sum += item.Total().Amount()
				}
				assert.Equal(t, sum, totals.TotalAmount.Amount())
				assert.Equal(t, totals.TotalAmount.Percent(order.TaxRate), totals.Tax)
				assert.Equal(t,
					totals.TotalAmount.Amount()+totals.DeliveryFee.Amount()+totals.Tax.Amount(),
					totals.FinalAmount.Amount())
			}
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := order.ComputeTotals(nil, money(t, 25))

		assert.Equal(t, int64(0), totals.TotalAmount.Amount())
		assert.Equal(t, int64(25), totals.FinalAmount.Amount())
	})
}
