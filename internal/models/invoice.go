package models

import "time"

// Default values applied to fields the form leaves out.
const (
	DefaultTaxRate  = 10.0
	DefaultQuantity = 1.0
)

// Invoice represents a complete, validated billing record.
type Invoice struct {
	// InvoiceNumber identifies the invoice to the client (e.g. "INV-2410-042").
	// Uniqueness is up to the caller.
	InvoiceNumber string

	// Date is the issue date.
	Date time.Time

	// DueDate is the payment due date.
	DueDate time.Time

	ClientName  string
	ClientEmail string

	// ClientAddress may span several lines; line breaks are kept as entered.
	ClientAddress string

	// Items are the billable lines, in display order. Never empty.
	Items []Item

	// TaxEnabled turns on tax at TaxRate.
	TaxEnabled bool

	// TaxRate is a percentage in [0, 100]. Ignored unless TaxEnabled.
	TaxRate float64

	// Notes is optional free text (payment instructions and such).
	Notes string
}

// Item represents a single line item on an invoice.
type Item struct {
	// Description is the name of the billed work or product (e.g. "Design").
	Description string

	// Quantity is at least 1. Fractional quantities (hours) are allowed.
	Quantity float64

	// Price is the unit price, at least 0.
	Price float64
}

// Totals holds the figures computed from an invoice's items and tax settings.
// Values are unrounded; rounding happens only when they are formatted.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}
