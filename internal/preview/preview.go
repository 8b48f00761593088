// Package preview assembles the figures shown on the invoice preview.
package preview

import (
	"github.com/mmynk/invoiceforge/internal/calculator"
	"github.com/mmynk/invoiceforge/internal/models"
	"github.com/mmynk/invoiceforge/internal/money"
)

// DisplayDateLayout matches the en-US short date used on the preview.
const DisplayDateLayout = "Jan 2, 2006"

// Line is one rendered item row.
type Line struct {
	Description string
	Quantity    float64
	Price       string
	Amount      string
}

// Preview is the display-ready form of a validated invoice.
type Preview struct {
	InvoiceNumber string
	IssuedOn      string
	DueOn         string

	ClientName    string
	ClientEmail   string
	ClientAddress string

	Lines []Line

	Subtotal string
	// TaxLabel is "Tax (10%)" when tax is enabled, "Tax" otherwise.
	TaxLabel string
	Tax      string
	Total    string

	Notes string

	// Totals are the unrounded figures behind Subtotal, Tax and Total.
	Totals models.Totals
}

// Build renders inv using f. Totals come from calculator.CalculateInvoice,
// the same call the live totals use.
func Build(inv *models.Invoice, f *money.Formatter) *Preview {
	totals := calculator.CalculateInvoice(inv)

	lines := make([]Line, len(inv.Items))
	for i, item := range inv.Items {
		lines[i] = Line{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       f.Currency(item.Price),
			Amount:      f.Currency(calculator.LineAmount(item)),
		}
	}

	taxLabel := "Tax"
	if inv.TaxEnabled {
		taxLabel = "Tax (" + f.Percent(inv.TaxRate) + ")"
	}

	return &Preview{
		InvoiceNumber: inv.InvoiceNumber,
		IssuedOn:      inv.Date.Format(DisplayDateLayout),
		DueOn:         inv.DueDate.Format(DisplayDateLayout),
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientAddress: inv.ClientAddress,
		Lines:         lines,
		Subtotal:      f.Currency(totals.Subtotal),
		TaxLabel:      taxLabel,
		Tax:           f.Currency(totals.Tax),
		Total:         f.Currency(totals.Total),
		Notes:         inv.Notes,
		Totals:        totals,
	}
}

// ExportFilename is the download name for an exported invoice image.
func ExportFilename(inv *models.Invoice) string {
	return "Invoice-" + inv.InvoiceNumber + ".png"
}
