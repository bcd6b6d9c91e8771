package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	items := []LineItem{
		{Description: "Cement bags", Quantity: 10, UnitPrice: 100},
		{Description: "Labour", Quantity: 1, UnitPrice: 5000},
	}

	totals := Calculate(items, Charges{TaxRate: 16})

	assert.Equal(t, 6000.0, totals.Subtotal)
	assert.Equal(t, 960.0, totals.TaxAmount)
	assert.Equal(t, 6960.0, totals.Total)
	assert.Equal(t, 6960.0, totals.AmountDue)
}

func TestCalculateEmptyItems(t *testing.T) {
	totals := Calculate(nil, Charges{Discount: 50, TaxRate: 16, Shipping: 200})

	assert.Equal(t, 0.0, totals.Subtotal)
	// Tax still applies to the (negative) discounted base.
	assert.Equal(t, -8.0, totals.TaxAmount)
	assert.Equal(t, 142.0, totals.Total)
	assert.Equal(t, 142.0, totals.AmountDue)
}

func TestCalculateDiscountAndShipping(t *testing.T) {
	items := []LineItem{{Description: "Repair", Quantity: 2, UnitPrice: 1500}}

	totals := Calculate(items, Charges{Discount: 500, TaxRate: 16, Shipping: 300})

	assert.Equal(t, 3000.0, totals.Subtotal)
	assert.Equal(t, 400.0, totals.TaxAmount)
	assert.Equal(t, 3200.0, totals.Total)
}

func TestCalculateDepositExceedsTotal(t *testing.T) {
	items := []LineItem{{Description: "Consultation", Quantity: 1, UnitPrice: 1000}}

	totals := Calculate(items, Charges{Deposit: 1500})

	// Deliberately unclamped: overpaid deposits show as negative balance.
	assert.Equal(t, -500.0, totals.AmountDue)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "6960.00", FormatAmount(6960))
	assert.Equal(t, "0.50", FormatAmount(0.499999999))
	assert.Equal(t, "0.13", FormatAmount(0.125))
	assert.Equal(t, "-500.00", FormatAmount(-500))
}
