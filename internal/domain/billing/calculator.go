package billing

import (
	"fmt"
	"math"
)

// LineItem is one billable row in a document or order.
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// Charges holds the document-level adjustments applied on top of the line items.
// Discount and Shipping are flat amounts; TaxRate is a percentage applied to
// (subtotal - discount). Deposit reduces the amount due.
type Charges struct {
	Discount float64
	TaxRate  float64
	Shipping float64
	Deposit  float64
}

// Totals is the derived money breakdown of a document.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
	AmountDue float64 `json:"amount_due"`
}

// Calculate computes document totals from line items and charges.
//
//	subtotal  = sum(quantity * unit price)
//	tax       = (subtotal - discount) * rate / 100
//	total     = subtotal - discount + tax + shipping
//	amountDue = total - deposit
//
// AmountDue goes negative when the deposit exceeds the total; callers that
// care must handle that themselves.
func Calculate(items []LineItem, charges Charges) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.UnitPrice
	}

	taxAmount := (subtotal - charges.Discount) * charges.TaxRate / 100
	total := subtotal - charges.Discount + taxAmount + charges.Shipping

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     total,
		AmountDue: total - charges.Deposit,
	}
}

// FormatAmount renders a monetary value with exactly two fraction digits,
// rounding half away from zero. Internal arithmetic stays full precision;
// this is a display-boundary concern only.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", math.Round(v*100)/100)
}
