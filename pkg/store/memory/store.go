// Package memory provides an in-memory submission store. Useful for tests,
// demos and ephemeral deployments.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-dbform/pkg/submission"
)

var _ submission.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the ID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// Store keeps submissions in insertion order behind a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records []submission.Submission

	now   func() time.Time
	newID func() string
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create validates rec, assigns ID and CreatedAt, and stores a copy.
func (s *Store) Create(ctx context.Context, rec *submission.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.newID()
	rec.CreatedAt = s.now().UTC()
	s.records = append(s.records, clone(*rec))
	return nil
}

// FormNames returns distinct form names, sorted.
func (s *Store) FormNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.records))
	names := make([]string, 0)
	for _, rec := range s.records {
		if _, ok := seen[rec.FormName]; ok {
			continue
		}
		seen[rec.FormName] = struct{}{}
		names = append(names, rec.FormName)
	}
	slices.Sort(names)
	return names, nil
}

// Find returns copies of matching submissions ordered by name, created_at.
func (s *Store) Find(ctx context.Context, filter submission.Filter) ([]submission.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []submission.Submission
	for _, rec := range s.records {
		if filter.Matches(rec) {
			matches = append(matches, clone(rec))
		}
	}
	submission.Sort(matches)
	return matches, nil
}

// Len reports the number of stored submissions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func clone(rec submission.Submission) submission.Submission {
	fields := make(submission.Fields, len(rec.Fields))
	for i, field := range rec.Fields {
		field.Values = append([]string(nil), field.Values...)
		fields[i] = field
	}
	rec.Fields = fields
	return rec
}
