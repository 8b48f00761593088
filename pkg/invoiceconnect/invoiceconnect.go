// Package invoiceconnect wires the InvoiceService procedures to Connect.
//
// Messages are google.protobuf.Struct values, so every Connect codec works:
// browsers post plain JSON objects, Go clients default to binary protobuf.
package invoiceconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
)

// InvoiceServiceName is the fully-qualified name of the InvoiceService service.
const InvoiceServiceName = "invoiceforge.v1.InvoiceService"

// Fully-qualified procedure names, used as HTTP routes.
const (
	ValidateInvoiceProcedure = "/" + InvoiceServiceName + "/ValidateInvoice"
	CalculateTotalsProcedure = "/" + InvoiceServiceName + "/CalculateTotals"
	PreviewInvoiceProcedure  = "/" + InvoiceServiceName + "/PreviewInvoice"
	NewInvoiceProcedure      = "/" + InvoiceServiceName + "/NewInvoice"
	GetDraftProcedure        = "/" + InvoiceServiceName + "/GetDraft"
	SaveDraftProcedure       = "/" + InvoiceServiceName + "/SaveDraft"
	DiscardDraftProcedure    = "/" + InvoiceServiceName + "/DiscardDraft"
)

// Request is the request type of every procedure.
type Request = connect.Request[structpb.Struct]

// Response is the response type of every procedure.
type Response = connect.Response[structpb.Struct]

// InvoiceServiceHandler is implemented by the server side of InvoiceService.
type InvoiceServiceHandler interface {
	ValidateInvoice(context.Context, *Request) (*Response, error)
	CalculateTotals(context.Context, *Request) (*Response, error)
	PreviewInvoice(context.Context, *Request) (*Response, error)
	NewInvoice(context.Context, *Request) (*Response, error)
	GetDraft(context.Context, *Request) (*Response, error)
	SaveDraft(context.Context, *Request) (*Response, error)
	DiscardDraft(context.Context, *Request) (*Response, error)
}

// NewInvoiceServiceHandler builds an HTTP handler serving every procedure of
// svc. It returns the path prefix to mount the handler on.
func NewInvoiceServiceHandler(svc InvoiceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	procedures := map[string]func(context.Context, *Request) (*Response, error){
		ValidateInvoiceProcedure: svc.ValidateInvoice,
		CalculateTotalsProcedure: svc.CalculateTotals,
		PreviewInvoiceProcedure:  svc.PreviewInvoice,
		NewInvoiceProcedure:      svc.NewInvoice,
		GetDraftProcedure:        svc.GetDraft,
		SaveDraftProcedure:       svc.SaveDraft,
		DiscardDraftProcedure:    svc.DiscardDraft,
	}

	mux := http.NewServeMux()
	for procedure, unary := range procedures {
		mux.Handle(procedure, connect.NewUnaryHandler(procedure, unary, opts...))
	}
	return "/" + InvoiceServiceName + "/", mux
}

// InvoiceServiceClient is a client for InvoiceService.
type InvoiceServiceClient struct {
	validateInvoice *connect.Client[structpb.Struct, structpb.Struct]
	calculateTotals *connect.Client[structpb.Struct, structpb.Struct]
	previewInvoice  *connect.Client[structpb.Struct, structpb.Struct]
	newInvoice      *connect.Client[structpb.Struct, structpb.Struct]
	getDraft        *connect.Client[structpb.Struct, structpb.Struct]
	saveDraft       *connect.Client[structpb.Struct, structpb.Struct]
	discardDraft    *connect.Client[structpb.Struct, structpb.Struct]
}

// NewInvoiceServiceClient constructs a client for the service at baseURL,
// e.g. "http://localhost:8080".
func NewInvoiceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *InvoiceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	newClient := func(procedure string) *connect.Client[structpb.Struct, structpb.Struct] {
		return connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+procedure, opts...)
	}
	return &InvoiceServiceClient{
		validateInvoice: newClient(ValidateInvoiceProcedure),
		calculateTotals: newClient(CalculateTotalsProcedure),
		previewInvoice:  newClient(PreviewInvoiceProcedure),
		newInvoice:      newClient(NewInvoiceProcedure),
		getDraft:        newClient(GetDraftProcedure),
		saveDraft:       newClient(SaveDraftProcedure),
		discardDraft:    newClient(DiscardDraftProcedure),
	}
}

// ValidateInvoice calls invoiceforge.v1.InvoiceService.ValidateInvoice.
func (c *InvoiceServiceClient) ValidateInvoice(ctx context.Context, req *Request) (*Response, error) {
	return c.validateInvoice.CallUnary(ctx, req)
}

// CalculateTotals calls invoiceforge.v1.InvoiceService.CalculateTotals.
func (c *InvoiceServiceClient) CalculateTotals(ctx context.Context, req *Request) (*Response, error) {
	return c.calculateTotals.CallUnary(ctx, req)
}

// PreviewInvoice calls invoiceforge.v1.InvoiceService.PreviewInvoice.
func (c *InvoiceServiceClient) PreviewInvoice(ctx context.Context, req *Request) (*Response, error) {
	return c.previewInvoice.CallUnary(ctx, req)
}

// NewInvoice calls invoiceforge.v1.InvoiceService.NewInvoice.
func (c *InvoiceServiceClient) NewInvoice(ctx context.Context, req *Request) (*Response, error) {
	return c.newInvoice.CallUnary(ctx, req)
}

// GetDraft calls invoiceforge.v1.InvoiceService.GetDraft.
func (c *InvoiceServiceClient) GetDraft(ctx context.Context, req *Request) (*Response, error) {
	return c.getDraft.CallUnary(ctx, req)
}

// SaveDraft calls invoiceforge.v1.InvoiceService.SaveDraft.
func (c *InvoiceServiceClient) SaveDraft(ctx context.Context, req *Request) (*Response, error) {
	return c.saveDraft.CallUnary(ctx, req)
}

// DiscardDraft calls invoiceforge.v1.InvoiceService.DiscardDraft.
func (c *InvoiceServiceClient) DiscardDraft(ctx context.Context, req *Request) (*Response, error) {
	return c.discardDraft.CallUnary(ctx, req)
}
