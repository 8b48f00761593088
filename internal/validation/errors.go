package validation

import (
	"errors"
	"strings"
)

// ErrInvalidInvoice is the sentinel every *ValidationError unwraps to.
var ErrInvalidInvoice = errors.New("invalid invoice")

// FieldError is one failed constraint.
type FieldError struct {
	// Path locates the field, e.g. "clientEmail" or "items[2].price".
	Path    string
	Message string
}

// ValidationError collects every failed constraint of one candidate invoice,
// in field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Path + ": " + f.Message
	}
	return ErrInvalidInvoice.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInvoice
}

// Map returns the errors keyed by path. Each path appears at most once.
func (e *ValidationError) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Path] = f.Message
	}
	return m
}

// Message returns the message recorded for path, or "".
func (e *ValidationError) Message(path string) string {
	for _, f := range e.Fields {
		if f.Path == path {
			return f.Message
		}
	}
	return ""
}

// collector accumulates field errors across a validation pass.
type collector struct {
	fields []FieldError
}

func (c *collector) add(path, message string) {
	c.fields = append(c.fields, FieldError{Path: path, Message: message})
}

func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
