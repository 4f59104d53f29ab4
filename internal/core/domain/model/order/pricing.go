package order

import (
	"fmt"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is applied to the item subtotal only.
var TaxRate = decimal.RequireFromString("0.05")

// Totals are the monetary figures of an order.
type Totals struct {
	// TotalAmount is the sum of line totals.
	TotalAmount kernel.Money
	DeliveryFee kernel.Money
	// Tax is round(TotalAmount * TaxRate), half away from zero.
	Tax         kernel.Money
	FinalAmount kernel.Money
}

// ComputeTotals prices a set of line items. It has no side effects.
func ComputeTotals(items []LineItem, deliveryFee kernel.Money) Totals {
	total := kernel.ZeroMoney
	for _, item := range items {
		total = total.Add(item.Total())
	}

	tax := total.Percent(TaxRate)

	return Totals{
		TotalAmount: total,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		FinalAmount: total.Add(deliveryFee).Add(tax),
	}
}

// validateAgainst checks that stored totals agree with the items they were computed from.
func (t Totals) validateAgainst(items []LineItem) error {
	want := ComputeTotals(items, t.DeliveryFee)
	if want != t {
		return errs.NewValueIsInvalidErrorWithCause(
			"totals",
			fmt.Errorf("stored totals %+v do not match items %+v", t, want),
		)
	}
	return nil
}
