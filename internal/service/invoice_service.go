package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/invoiceforge/internal/calculator"
	"github.com/mmynk/invoiceforge/internal/metrics"
	"github.com/mmynk/invoiceforge/internal/models"
	"github.com/mmynk/invoiceforge/internal/money"
	"github.com/mmynk/invoiceforge/internal/numbering"
	"github.com/mmynk/invoiceforge/internal/preview"
	"github.com/mmynk/invoiceforge/internal/storage"
	"github.com/mmynk/invoiceforge/internal/validation"
	"github.com/mmynk/invoiceforge/pkg/invoiceconnect"
)

// Ensure InvoiceService implements the Connect handler interface
var _ invoiceconnect.InvoiceServiceHandler = (*InvoiceService)(nil)

// InvoiceService implements the Connect InvoiceService
type InvoiceService struct {
	drafts    storage.DraftStore
	formatter *money.Formatter
	numbers   *numbering.Generator
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures an InvoiceService.
type Option func(*InvoiceService)

// WithMetrics records validation outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *InvoiceService) { s.metrics = m }
}

// WithNumberGenerator sets the generator used for new drafts.
func WithNumberGenerator(g *numbering.Generator) Option {
	return func(s *InvoiceService) { s.numbers = g }
}

// WithClock sets the clock used to date new drafts.
func WithClock(now func() time.Time) Option {
	return func(s *InvoiceService) { s.now = now }
}

// NewInvoiceService creates a new InvoiceService backed by the given draft store.
func NewInvoiceService(drafts storage.DraftStore, formatter *money.Formatter, opts ...Option) *InvoiceService {
	s := &InvoiceService{
		drafts:    drafts,
		formatter: formatter,
		numbers:   numbering.NewGenerator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateInvoice checks a candidate invoice and reports every field error.
// Invalid input is a normal response here, not an RPC error, so the form
// can render the errors inline.
func (s *InvoiceService) ValidateInvoice(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	inv, err := s.validate(req.Msg.AsMap())
	if err != nil {
		slog.Debug("Invoice rejected", "error", err)
		return newStruct(map[string]any{
			keyValid:  false,
			keyErrors: fieldErrorList(err),
		})
	}

	return newStruct(map[string]any{
		keyValid:   true,
		keyErrors:  []any{},
		keyInvoice: invoiceFields(inv),
	})
}

// CalculateTotals computes the running total shown while editing. Only the
// items and tax settings are validated; the calculator never sees lines
// that failed validation.
func (s *InvoiceService) CalculateTotals(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	lines, err := validation.ValidateLines(req.Msg.AsMap())
	s.observe(err)
	if err != nil {
		return nil, invalidArgument(err)
	}

	totals := calculator.Calculate(lines.Items, lines.TaxEnabled, lines.TaxRate)
	slog.Debug("Totals calculated",
		"items_count", len(lines.Items),
		"subtotal", totals.Subtotal,
		"tax", totals.Tax,
		"total", totals.Total,
	)

	fields := totalsFields(totals)
	fields["formatted"] = map[string]any{
		"subtotal": s.formatter.Amount(totals.Subtotal),
		"tax":      s.formatter.Amount(totals.Tax),
		"total":    s.formatter.Amount(totals.Total),
	}
	fields["display"] = map[string]any{
		"subtotal": s.formatter.Currency(totals.Subtotal),
		"tax":      s.formatter.Currency(totals.Tax),
		"total":    s.formatter.Currency(totals.Total),
	}
	return newStruct(fields)
}

// PreviewInvoice validates an invoice and returns its display-ready preview.
func (s *InvoiceService) PreviewInvoice(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	inv, err := s.validate(req.Msg.AsMap())
	if err != nil {
		return nil, invalidArgument(err)
	}

	p := preview.Build(inv, s.formatter)
	slog.Info("Invoice preview generated",
		"invoice_number", inv.InvoiceNumber,
		"items_count", len(inv.Items),
		"total", p.Total,
	)
	return newStruct(previewFields(p, preview.ExportFilename(inv)))
}

// NewInvoice starts a draft session pre-filled with defaults.
func (s *InvoiceService) NewInvoice(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	draft, err := s.drafts.Create(ctx, s.defaultDraft())
	if err != nil {
		slog.Error("NewInvoice failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Draft session started", "session_id", draft.SessionID)
	return newStruct(map[string]any{
		keySessionID: draft.SessionID,
		keyInvoice:   draft.Fields,
	})
}

// GetDraft returns the raw draft held for a session.
func (s *InvoiceService) GetDraft(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	id, err := sessionID(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		slog.Warn("GetDraft failed", "session_id", id, "error", err)
		return nil, storageError(err)
	}

	return newStruct(map[string]any{
		keySessionID: draft.SessionID,
		keyInvoice:   draft.Fields,
	})
}

// SaveDraft stores the form's current input as-is and reports whether it
// would pass validation.
func (s *InvoiceService) SaveDraft(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	id, err := sessionID(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	fields, err := requiredObject(req.Msg, keyInvoice)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	draft, err := s.drafts.Save(ctx, id, fields)
	if err != nil {
		slog.Warn("SaveDraft failed", "session_id", id, "error", err)
		return nil, storageError(err)
	}

	// Autosaves of unfinished drafts are not counted as validations.
	_, verr := validation.Validate(draft.Fields)
	return newStruct(map[string]any{
		keySessionID: draft.SessionID,
		keyValid:     verr == nil,
		keyErrors:    fieldErrorList(verr),
	})
}

// DiscardDraft ends a draft session.
func (s *InvoiceService) DiscardDraft(ctx context.Context, req *invoiceconnect.Request) (*invoiceconnect.Response, error) {
	id, err := sessionID(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.drafts.Delete(ctx, id); err != nil {
		slog.Warn("DiscardDraft failed", "session_id", id, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Draft session discarded", "session_id", id)
	return newStruct(map[string]any{})
}

func (s *InvoiceService) validate(raw map[string]any) (*models.Invoice, error) {
	inv, err := validation.Validate(raw)
	s.observe(err)
	return inv, err
}

func (s *InvoiceService) observe(err error) {
	if s.metrics != nil {
		s.metrics.ObserveValidation(err)
	}
}

// defaultDraft is the record a new invoice starts from: one empty line,
// tax off at the default rate, today's date and a suggested number.
func (s *InvoiceService) defaultDraft() map[string]any {
	return map[string]any{
		validation.FieldInvoiceNumber: s.numbers.Next(),
		validation.FieldDate:          s.now().Format(validation.DateLayout),
		validation.FieldDueDate:       "",
		validation.FieldClientName:    "",
		validation.FieldClientEmail:   "",
		validation.FieldClientAddress: "",
		validation.FieldItems: []any{
			map[string]any{
				validation.FieldDescription: "",
				validation.FieldQuantity:    models.DefaultQuantity,
				validation.FieldPrice:       0.0,
			},
		},
		validation.FieldTaxEnabled: false,
		validation.FieldTaxRate:    models.DefaultTaxRate,
		validation.FieldNotes:      "",
	}
}

// storageError maps draft store failures onto Connect codes.
func storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrDraftNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, fmt.Errorf("draft store: %w", err))
	}
}
