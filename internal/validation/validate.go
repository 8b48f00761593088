// Package validation turns untrusted invoice input into a models.Invoice.
//
// Input is the decoded shape of a JSON object: map[string]any with string,
// float64, bool, nil, []any and map[string]any values. Every field is checked
// in one pass so a form can show all of its errors at once. The result is
// either a fully typed *models.Invoice or a *ValidationError listing each
// offending field by path ("clientEmail", "items[1].price").
//
// Out-of-range values are rejected, never adjusted: a quantity of 0 is an
// error, not a quantity of 1.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/invoiceforge/internal/models"
)

// DateLayout is the format of date fields, as produced by HTML date inputs.
const DateLayout = "2006-01-02"

// Field names of the raw invoice record.
const (
	FieldInvoiceNumber = "invoiceNumber"
	FieldDate          = "date"
	FieldDueDate       = "dueDate"
	FieldClientName    = "clientName"
	FieldClientEmail   = "clientEmail"
	FieldClientAddress = "clientAddress"
	FieldItems         = "items"
	FieldTaxEnabled    = "taxEnabled"
	FieldTaxRate       = "taxRate"
	FieldNotes         = "notes"

	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
)

// MsgItemsRequired is reported on "items" when the list is empty or missing.
const MsgItemsRequired = "At least one item is required"

// Lines is the subset of an invoice the totals calculator needs.
type Lines struct {
	Items      []models.Item
	TaxEnabled bool
	TaxRate    float64
}

// Validate checks every field of raw and returns the typed invoice, or a
// *ValidationError describing all violations.
func Validate(raw map[string]any) (*models.Invoice, error) {
	c := &collector{}

	inv := &models.Invoice{
		InvoiceNumber: requiredText(c, raw, FieldInvoiceNumber, FieldInvoiceNumber, "Invoice number"),
		Date:          requiredDate(c, raw, FieldDate, "Date"),
		DueDate:       requiredDate(c, raw, FieldDueDate, "Due date"),
		ClientName:    requiredText(c, raw, FieldClientName, FieldClientName, "Client name"),
		ClientEmail:   email(c, raw),
		ClientAddress: requiredText(c, raw, FieldClientAddress, FieldClientAddress, "Client address"),
	}
	lines := validateLines(c, raw)
	inv.Items = lines.Items
	inv.TaxEnabled = lines.TaxEnabled
	inv.TaxRate = lines.TaxRate

	notes, ok := text(raw[FieldNotes])
	if !ok {
		c.add(FieldNotes, "Notes must be text")
	}
	inv.Notes = notes

	if err := c.err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// ValidateLines checks only items, taxEnabled and taxRate. It backs live
// totals while the rest of the form is still being filled in.
func ValidateLines(raw map[string]any) (*Lines, error) {
	c := &collector{}
	lines := validateLines(c, raw)
	if err := c.err(); err != nil {
		return nil, err
	}
	return &lines, nil
}

func validateLines(c *collector, raw map[string]any) Lines {
	var lines Lines
	lines.Items = validateItems(c, raw[FieldItems])

	enabled, ok := flag(raw[FieldTaxEnabled])
	if !ok {
		c.add(FieldTaxEnabled, "Tax enabled must be true or false")
	}
	lines.TaxEnabled = enabled

	rate, err := number(raw[FieldTaxRate])
	switch {
	case errors.Is(err, errMissing):
		rate = models.DefaultTaxRate
	case err != nil:
		c.add(FieldTaxRate, "Tax rate must be a number")
	case rate < 0:
		c.add(FieldTaxRate, "Tax rate must be at least 0")
	case rate > 100:
		c.add(FieldTaxRate, "Tax rate cannot exceed 100")
	}
	lines.TaxRate = rate
	return lines
}

func validateItems(c *collector, v any) []models.Item {
	list, ok := v.([]any)
	if v != nil && !ok {
		c.add(FieldItems, "Items must be a list")
		return nil
	}
	if len(list) == 0 {
		c.add(FieldItems, MsgItemsRequired)
		return nil
	}

	items := make([]models.Item, 0, len(list))
	for i, entry := range list {
		prefix := fmt.Sprintf("%s[%d]", FieldItems, i)
		fields, ok := entry.(map[string]any)
		if !ok {
			c.add(prefix, "Item must be an object")
			continue
		}
		items = append(items, validateItem(c, prefix, fields))
	}
	return items
}

func validateItem(c *collector, prefix string, raw map[string]any) models.Item {
	item := models.Item{
		Description: requiredText(c, raw, FieldDescription, prefix+"."+FieldDescription, "Description"),
	}

	qtyPath := prefix + "." + FieldQuantity
	qty, err := number(raw[FieldQuantity])
	switch {
	case errors.Is(err, errMissing):
		c.add(qtyPath, "Quantity is required")
	case err != nil:
		c.add(qtyPath, "Quantity must be a number")
	case qty < 1:
		c.add(qtyPath, "Quantity must be at least 1")
	}
	item.Quantity = qty

	pricePath := prefix + "." + FieldPrice
	price, err := number(raw[FieldPrice])
	switch {
	case errors.Is(err, errMissing):
		c.add(pricePath, "Price is required")
	case err != nil:
		c.add(pricePath, "Price must be a number")
	case price < 0:
		c.add(pricePath, "Price must be at least 0")
	}
	item.Price = price

	return item
}

// requiredText reads raw[key] as non-empty text, reporting under path.
func requiredText(c *collector, raw map[string]any, key, path, label string) string {
	s, ok := text(raw[key])
	if !ok {
		c.add(path, label+" must be text")
		return ""
	}
	if s == "" {
		c.add(path, label+" is required")
	}
	return s
}

func requiredDate(c *collector, raw map[string]any, key, label string) time.Time {
	s, ok := text(raw[key])
	switch {
	case !ok:
		c.add(key, label+" must be text")
	case s == "":
		c.add(key, label+" is required")
	default:
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			c.add(key, label+" must be a valid date (YYYY-MM-DD)")
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}

func email(c *collector, raw map[string]any) string {
	s, ok := text(raw[FieldClientEmail])
	if !ok {
		c.add(FieldClientEmail, "Client email must be text")
		return ""
	}
	if !isEmail(s) {
		c.add(FieldClientEmail, "Invalid email address")
	}
	return s
}
