package calculator

import "github.com/mmynk/invoiceforge/internal/models"

// LineAmount returns quantity × price for one item.
func LineAmount(item models.Item) float64 {
	return item.Quantity * item.Price
}

// Subtotal sums quantity × price over all items, in order.
// No rounding is applied to the running sum.
func Subtotal(items []models.Item) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += LineAmount(item)
	}
	return subtotal
}

// TaxAmount returns subtotal × taxRate/100 when tax is enabled, otherwise 0.
func TaxAmount(items []models.Item, taxEnabled bool, taxRate float64) float64 {
	return taxOn(Subtotal(items), taxEnabled, taxRate)
}

// Total returns subtotal plus tax.
func Total(items []models.Item, taxEnabled bool, taxRate float64) float64 {
	return Calculate(items, taxEnabled, taxRate).Total
}

// Calculate computes all three figures for an invoice.
// The live totals RPC and the preview both go through here, so the two
// views always agree for the same input.
// Inputs are assumed validated: quantities ≥ 1, prices ≥ 0, rate in [0, 100].
func Calculate(items []models.Item, taxEnabled bool, taxRate float64) models.Totals {
	subtotal := Subtotal(items)
	tax := taxOn(subtotal, taxEnabled, taxRate)
	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// taxOn is the single tax rule shared by TaxAmount and Calculate.
func taxOn(subtotal float64, taxEnabled bool, taxRate float64) float64 {
	if !taxEnabled {
		return 0
	}
	return subtotal * (taxRate / 100)
}

// CalculateInvoice is Calculate over an invoice's own items and tax settings.
func CalculateInvoice(inv *models.Invoice) models.Totals {
	return Calculate(inv.Items, inv.TaxEnabled, inv.TaxRate)
}
