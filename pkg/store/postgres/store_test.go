package postgres

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dbform/pkg/submission"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	execs    []execCall
	execErr  error
	queryErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, f.queryErr
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not supported")
}

func TestStore_CreateInsertsYAMLContent(t *testing.T) {
	db := &fakeDB{}
	at := time.Date(2024, 2, 3, 4, 5, 0, 0, time.FixedZone("x", 7200))
	store := New(db, WithClock(func() time.Time { return at }))

	rec := &submission.Submission{
		FormName: "contact",
		Fields:   submission.NewFields(url.Values{"name": {"nick"}, "home_phone": {"111-222-3333"}}),
	}
	require.NoError(t, store.Create(context.Background(), rec))

	require.Len(t, db.execs, 1)
	call := db.execs[0]
	assert.Equal(t, insertSQL, call.sql)
	require.Len(t, call.args, 4)
	assert.Equal(t, rec.ID, call.args[0])
	assert.Equal(t, "contact", call.args[1])
	assert.Equal(t, "home_phone: 111-222-3333\nname: nick\n", call.args[2])
	assert.Equal(t, at.UTC(), call.args[3])

	_, err := uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.True(t, rec.CreatedAt.Equal(at))
}

func TestStore_CreateRejectsInvalidWithoutQuery(t *testing.T) {
	db := &fakeDB{}
	store := New(db)

	err := store.Create(context.Background(), &submission.Submission{FormName: "contact"})
	require.ErrorIs(t, err, submission.ErrInvalid)
	assert.Empty(t, db.execs)
}

func TestStore_WrapsDriverErrors(t *testing.T) {
	db := &fakeDB{execErr: errors.New("boom"), queryErr: errors.New("down")}
	store := New(db)

	err := store.Create(context.Background(), &submission.Submission{
		FormName: "contact",
		Fields:   submission.NewFields(url.Values{"a": {"b"}}),
	})
	assert.ErrorContains(t, err, "postgres: insert form response: boom")

	_, err = store.FormNames(context.Background())
	assert.ErrorContains(t, err, "postgres: query form names: down")

	_, err = store.Find(context.Background(), submission.Filter{Name: "contact"})
	assert.ErrorContains(t, err, "postgres: query form responses: down")
}
