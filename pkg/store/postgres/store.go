// Package postgres stores submissions in a PostgreSQL form_responses table
// using pgx. Field content is serialised as YAML.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dbform/pkg/submission"
)

var _ submission.Store = (*Store)(nil)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

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

// Store implements submission.Store on PostgreSQL.
type Store struct {
	db  DB
	now func() time.Time
}

// Connect opens a pgx pool and pings it.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return pool, nil
}

// New wraps db.
func New(db DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create validates rec, assigns ID and CreatedAt, and inserts it.
func (s *Store) Create(ctx context.Context, rec *submission.Submission) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	content, err := yaml.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("postgres: encode content: %w", err)
	}

	id := uuid.NewString()
	createdAt := s.now().UTC()
	if _, err := s.db.Exec(ctx, insertSQL, id, rec.FormName, string(content), createdAt); err != nil {
		return fmt.Errorf("postgres: insert form response: %w", err)
	}
	rec.ID = id
	rec.CreatedAt = createdAt
	return nil
}

// FormNames returns distinct form names, sorted.
func (s *Store) FormNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, formNamesSQL)
	if err != nil {
		return nil, fmt.Errorf("postgres: query form names: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: scan form names: %w", err)
	}
	return names, nil
}

// Find returns matching submissions ordered by name, created_at.
func (s *Store) Find(ctx context.Context, filter submission.Filter) ([]submission.Submission, error) {
	query, args := findQuery(filter)
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: query form responses: %w", err)
	}
	records, err := pgx.CollectRows(rows, scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("postgres: scan form responses: %w", err)
	}
	return records, nil
}

func scanSubmission(row pgx.CollectableRow) (submission.Submission, error) {
	var (
		rec     submission.Submission
		content string
	)
	if err := row.Scan(&rec.ID, &rec.FormName, &content, &rec.CreatedAt); err != nil {
		return rec, err
	}
	if err := yaml.Unmarshal([]byte(content), &rec.Fields); err != nil {
		return rec, fmt.Errorf("decode content of %s: %w", rec.ID, err)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}
