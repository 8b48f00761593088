package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/invoiceforge/internal/validation"
)

func TestObserveValidation(t *testing.T) {
	m := New()

	m.ObserveValidation(nil)
	m.ObserveValidation(&validation.ValidationError{Fields: []validation.FieldError{
		{Path: "clientEmail", Message: "Invalid email address"},
		{Path: "items[0].price", Message: "Price must be at least 0"},
		{Path: "items[3].price", Message: "Price must be at least 0"},
	}})

	if got := testutil.ToFloat64(m.Validations.WithLabelValues(ResultValid)); got != 1 {
		t.Errorf("valid count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Validations.WithLabelValues(ResultInvalid)); got != 1 {
		t.Errorf("invalid count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.FieldErrors.WithLabelValues("items[].price")); got != 2 {
		t.Errorf("items[].price count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.FieldErrors.WithLabelValues("clientEmail")); got != 1 {
		t.Errorf("clientEmail count = %v, want 1", got)
	}
}

func TestFieldLabel(t *testing.T) {
	tests := map[string]string{
		"clientEmail":           "clientEmail",
		"items":                 "items",
		"items[0]":              "items[]",
		"items[12].description": "items[].description",
	}
	for in, want := range tests {
		if got := FieldLabel(in); got != want {
			t.Errorf("FieldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.SetDrafts(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "invoiceforge_drafts_active 3") {
		t.Errorf("exposition missing drafts gauge:\n%s", body)
	}
}
