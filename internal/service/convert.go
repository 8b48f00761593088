package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/invoiceforge/internal/models"
	"github.com/mmynk/invoiceforge/internal/preview"
	"github.com/mmynk/invoiceforge/internal/validation"
)

// Request and response keys that are not invoice fields.
const (
	keySessionID = "session_id"
	keyInvoice   = "invoice"
	keyValid     = "valid"
	keyErrors    = "errors"
)

// newStruct wraps structpb.NewStruct for handler responses.
func newStruct(fields map[string]any) (*connect.Response[structpb.Struct], error) {
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to build response: %w", err))
	}
	return connect.NewResponse(msg), nil
}

// fieldErrorList renders validation failures as [{path, message}, ...].
func fieldErrorList(err error) []any {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		return []any{}
	}
	list := make([]any, len(verr.Fields))
	for i, f := range verr.Fields {
		list[i] = map[string]any{"path": f.Path, "message": f.Message}
	}
	return list
}

// invalidArgument turns a validation failure into a Connect error carrying
// one {path, message} detail per field.
func invalidArgument(err error) error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)

	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		return connectErr
	}
	for _, f := range verr.Fields {
		msg, structErr := structpb.NewStruct(map[string]any{"path": f.Path, "message": f.Message})
		if structErr != nil {
			continue
		}
		detail, detailErr := connect.NewErrorDetail(msg)
		if detailErr != nil {
			continue
		}
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// requiredObject reads a required object-valued field of a request.
// An absent or null value is an error, never an empty object.
func requiredObject(msg *structpb.Struct, key string) (map[string]any, error) {
	v, ok := msg.GetFields()[key]
	if !ok {
		return nil, fmt.Errorf("%s required", key)
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, fmt.Errorf("%s required", key)
	}
	obj := v.GetStructValue()
	if obj == nil {
		return nil, fmt.Errorf("%s must be an object", key)
	}
	return obj.AsMap(), nil
}

// sessionID reads the required session_id field of a request.
func sessionID(msg *structpb.Struct) (string, error) {
	id := msg.GetFields()[keySessionID].GetStringValue()
	if id == "" {
		return "", fmt.Errorf("%s required", keySessionID)
	}
	return id, nil
}

// invoiceFields renders a validated invoice back into raw field form, with
// values in their coerced types.
func invoiceFields(inv *models.Invoice) map[string]any {
	items := make([]any, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = map[string]any{
			validation.FieldDescription: item.Description,
			validation.FieldQuantity:    item.Quantity,
			validation.FieldPrice:       item.Price,
		}
	}
	return map[string]any{
		validation.FieldInvoiceNumber: inv.InvoiceNumber,
		validation.FieldDate:          inv.Date.Format(validation.DateLayout),
		validation.FieldDueDate:       inv.DueDate.Format(validation.DateLayout),
		validation.FieldClientName:    inv.ClientName,
		validation.FieldClientEmail:   inv.ClientEmail,
		validation.FieldClientAddress: inv.ClientAddress,
		validation.FieldItems:         items,
		validation.FieldTaxEnabled:    inv.TaxEnabled,
		validation.FieldTaxRate:       inv.TaxRate,
		validation.FieldNotes:         inv.Notes,
	}
}

func previewFields(p *preview.Preview, exportName string) map[string]any {
	lines := make([]any, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = map[string]any{
			"description": line.Description,
			"quantity":    line.Quantity,
			"price":       line.Price,
			"amount":      line.Amount,
		}
	}
	return map[string]any{
		"invoice_number": p.InvoiceNumber,
		"issued_on":      p.IssuedOn,
		"due_on":         p.DueOn,
		"client": map[string]any{
			"name":    p.ClientName,
			"email":   p.ClientEmail,
			"address": p.ClientAddress,
		},
		"lines":           lines,
		"subtotal":        p.Subtotal,
		"tax_label":       p.TaxLabel,
		"tax":             p.Tax,
		"total":           p.Total,
		"notes":           p.Notes,
		"totals":          totalsFields(p.Totals),
		"export_filename": exportName,
	}
}

func totalsFields(t models.Totals) map[string]any {
	return map[string]any{
		"subtotal": t.Subtotal,
		"tax":      t.Tax,
		"total":    t.Total,
	}
}
