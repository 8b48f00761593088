// Package memory provides an in-memory implementation of storage.DraftStore.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/invoiceforge/internal/storage"
)

// Ensure Store implements storage.DraftStore
var _ storage.DraftStore = (*Store)(nil)

// DefaultTTL is how long an untouched draft is kept.
const DefaultTTL = 2 * time.Hour

// Store keeps drafts in a map. Drafts idle for longer than the TTL are
// dropped by a janitor goroutine and are never returned once expired.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*storage.Draft
	ttl    time.Duration
	now    func() time.Time

	// onCount, if set, receives the draft count after every change.
	onCount func(int)

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the idle lifetime of a draft.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock sets the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCountObserver registers fn to be called with the number of live
// drafts whenever it changes.
func WithCountObserver(fn func(int)) Option {
	return func(s *Store) { s.onCount = fn }
}

// New creates a Store and starts its janitor, which sweeps expired drafts
// every sweepInterval. A non-positive sweepInterval disables the janitor;
// expired drafts are then only dropped when looked up.
func New(sweepInterval time.Duration, opts ...Option) *Store {
	s := &Store{
		drafts: make(map[string]*storage.Draft),
		ttl:    DefaultTTL,
		now:    time.Now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if sweepInterval > 0 {
		go s.janitor(sweepInterval)
	} else {
		close(s.done)
	}
	return s
}

// Close stops the janitor and drops all drafts.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done

		s.mu.Lock()
		clear(s.drafts)
		s.notifyLocked()
		s.mu.Unlock()
	})
	return nil
}

// Create starts a new draft session.
func (s *Store) Create(ctx context.Context, fields map[string]any) (*storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	draft := &storage.Draft{
		SessionID: uuid.New().String(),
		Fields:    cloneFields(fields),
		UpdatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = draft
	s.notifyLocked()

	return copyDraft(draft), nil
}

// Get retrieves the draft for a session.
func (s *Store) Get(ctx context.Context, sessionID string) (*storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.liveLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return copyDraft(draft), nil
}

// Save replaces a draft's fields and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sessionID string, fields map[string]any) (*storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.liveLocked(sessionID)
	if err != nil {
		return nil, err
	}
	draft.Fields = cloneFields(fields)
	draft.UpdatedAt = s.now()

	return copyDraft(draft), nil
}

// Delete discards a draft.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.liveLocked(sessionID); err != nil {
		return err
	}
	delete(s.drafts, sessionID)
	s.notifyLocked()
	return nil
}

// Len returns the number of drafts currently held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Sweep drops every expired draft and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, draft := range s.drafts {
		if s.expiredLocked(draft) {
			delete(s.drafts, id)
			removed++
		}
	}
	if removed > 0 {
		s.notifyLocked()
	}
	return removed
}

func (s *Store) janitor(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("Expired drafts removed", "count", n)
			}
		}
	}
}

// liveLocked returns the draft for sessionID, dropping it if expired.
func (s *Store) liveLocked(sessionID string) (*storage.Draft, error) {
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrDraftNotFound, sessionID)
	}
	if s.expiredLocked(draft) {
		delete(s.drafts, sessionID)
		s.notifyLocked()
		return nil, fmt.Errorf("%w: %s (expired)", storage.ErrDraftNotFound, sessionID)
	}
	return draft, nil
}

func (s *Store) expiredLocked(draft *storage.Draft) bool {
	return s.ttl > 0 && s.now().Sub(draft.UpdatedAt) > s.ttl
}

func (s *Store) notifyLocked() {
	if s.onCount != nil {
		s.onCount(len(s.drafts))
	}
}

func copyDraft(d *storage.Draft) *storage.Draft {
	return &storage.Draft{
		SessionID: d.SessionID,
		Fields:    cloneFields(d.Fields),
		UpdatedAt: d.UpdatedAt,
	}
}

// cloneFields deep-copies a raw record so callers never share nested
// item lists with the store.
func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
