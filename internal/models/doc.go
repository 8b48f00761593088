// Package models defines the core domain models for InvoiceForge.
//
// # Models
//
//   - Invoice: a validated invoice record built from form input
//   - Item: one billable line on an invoice
//   - Totals: the three figures derived from an invoice
//
// An Invoice only exists after validation. Raw form input travels as
// map[string]any drafts until internal/validation turns it into an Invoice,
// so every value held in these structs already satisfies its constraints.
//
// Invoices are never persisted. A draft lives in memory for the length of a
// user session and is dropped when the session ends or a new invoice is
// started.
package models
