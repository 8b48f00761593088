// Package storage holds invoice drafts for the length of a user session.
//
// Drafts are raw form input (map[string]any), kept unvalidated so the form
// can round-trip half-finished invoices. Nothing here outlives the process.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDraftNotFound is returned for unknown, discarded or expired sessions.
var ErrDraftNotFound = errors.New("draft not found")

// Draft is one session's in-progress invoice.
type Draft struct {
	// SessionID is the unique identifier of the session (UUID format).
	SessionID string

	// Fields is the raw invoice record as last submitted by the form.
	Fields map[string]any

	// UpdatedAt is when the draft was created or last saved.
	UpdatedAt time.Time
}

// DraftStore defines the interface for draft session storage.
// Implementations must be safe for concurrent use by multiple sessions.
type DraftStore interface {
	// Create starts a session holding fields and returns the new draft with
	// its SessionID assigned.
	Create(ctx context.Context, fields map[string]any) (*Draft, error)

	// Get returns the draft for sessionID, or ErrDraftNotFound.
	Get(ctx context.Context, sessionID string) (*Draft, error)

	// Save replaces the fields of an existing draft, or returns ErrDraftNotFound.
	Save(ctx context.Context, sessionID string, fields map[string]any) (*Draft, error)

	// Delete discards a draft, or returns ErrDraftNotFound.
	Delete(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
