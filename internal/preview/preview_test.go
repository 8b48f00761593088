package preview

import (
	"testing"
	"time"

	"github.com/mmynk/invoiceforge/internal/models"
	"github.com/mmynk/invoiceforge/internal/money"
)

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		InvoiceNumber: "INV-2410-007",
		Date:          time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
		ClientName:    "John Doe",
		ClientEmail:   "john@example.com",
		ClientAddress: "123 Main St\nSpringfield",
		Items: []models.Item{
			{Description: "Design", Quantity: 2, Price: 50},
			{Description: "Hosting", Quantity: 1, Price: 20},
		},
		TaxEnabled: true,
		TaxRate:    10,
		Notes:      "Net 30",
	}
}

func TestBuild(t *testing.T) {
	p := Build(sampleInvoice(), money.NewFormatter(money.HalfUp))

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"InvoiceNumber", p.InvoiceNumber, "INV-2410-007"},
		{"IssuedOn", p.IssuedOn, "Oct 1, 2024"},
		{"DueOn", p.DueOn, "Oct 31, 2024"},
		{"ClientAddress", p.ClientAddress, "123 Main St\nSpringfield"},
		{"Subtotal", p.Subtotal, "$120.00"},
		{"TaxLabel", p.TaxLabel, "Tax (10%)"},
		{"Tax", p.Tax, "$12.00"},
		{"Total", p.Total, "$132.00"},
		{"Notes", p.Notes, "Net 30"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if len(p.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(p.Lines))
	}
	if p.Lines[0].Description != "Design" || p.Lines[0].Price != "$50.00" || p.Lines[0].Amount != "$100.00" {
		t.Errorf("Lines[0] = %+v", p.Lines[0])
	}
	if p.Lines[1].Amount != "$20.00" {
		t.Errorf("Lines[1].Amount = %q, want $20.00", p.Lines[1].Amount)
	}
	if p.Totals.Total != 132 {
		t.Errorf("Totals.Total = %v, want 132", p.Totals.Total)
	}
}

func TestBuild_TaxDisabled(t *testing.T) {
	inv := sampleInvoice()
	inv.TaxEnabled = false

	p := Build(inv, money.NewFormatter(money.HalfUp))
	if p.TaxLabel != "Tax" {
		t.Errorf("TaxLabel = %q, want Tax", p.TaxLabel)
	}
	if p.Tax != "$0.00" {
		t.Errorf("Tax = %q, want $0.00", p.Tax)
	}
	if p.Total != p.Subtotal {
		t.Errorf("Total %q != Subtotal %q with tax disabled", p.Total, p.Subtotal)
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename(sampleInvoice()); got != "Invoice-INV-2410-007.png" {
		t.Errorf("ExportFilename() = %q", got)
	}
}
