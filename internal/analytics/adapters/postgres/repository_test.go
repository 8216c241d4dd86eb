package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

var (
	from = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func eventRow(id int64, at time.Time) []any {
	return []any{
		id, at,
		int64(100), "Go Generics", from,
		int64(10), "alice",
		int64(1), "USA", "US",
		int64(11), "bob",
		int64(2), "Canada", "CA",
	}
}

// ------------------------------------------------------------
// WHERE PUSHDOWN
// ------------------------------------------------------------

func TestQueryEvents_PushesDownPredicateAndInterval(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	pred := filter.And(
		filter.Or(filter.Eq("location.code", "US"), filter.Not(filter.Eq("actor.id", int64(11)))),
		filter.Eq("content.owner.username", "alice"),
	)
	_, err := repo.QueryEvents(context.Background(), pred, timerange.Interval{Start: from, End: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "v.viewed_at >= $1 AND v.viewed_at < $2 AND ((c.code = $3 OR NOT (u.id = $4)) AND o.username = $5)"
	if !strings.Contains(db.lastQuery, want) {
		t.Fatalf("expected WHERE %q, got query:\n%s", want, db.lastQuery)
	}
	if !strings.HasSuffix(db.lastQuery, "ORDER BY v.viewed_at, v.id") {
		t.Fatalf("expected time ordering, got query:\n%s", db.lastQuery)
	}

	wantArgs := []any{from, to, "US", int64(11), "alice"}
	if len(db.lastArgs) != len(wantArgs) {
		t.Fatalf("expected %d args, got %v", len(wantArgs), db.lastArgs)
	}
	for i := range wantArgs {
		if db.lastArgs[i] != wantArgs[i] {
			t.Fatalf("arg %d: expected %v, got %v", i, wantArgs[i], db.lastArgs[i])
		}
	}
}

func TestQueryEvents_UnboundedMatchAll(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	if _, err := repo.QueryEvents(context.Background(), filter.MatchAll(), timerange.Interval{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "WHERE TRUE") {
		t.Fatalf("expected WHERE TRUE, got query:\n%s", db.lastQuery)
	}
	if len(db.lastArgs) != 0 {
		t.Fatalf("expected no args, got %v", db.lastArgs)
	}
}

func TestQueryEvents_EmptyCombinators(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db)

	pred := filter.Or(filter.Or(), filter.Not(filter.And()))
	if _, err := repo.QueryEvents(context.Background(), pred, timerange.Interval{End: to}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "v.viewed_at < $1 AND (FALSE OR NOT (TRUE))"
	if !strings.Contains(db.lastQuery, want) {
		t.Fatalf("expected WHERE %q, got query:\n%s", want, db.lastQuery)
	}
}

func TestColumnsCoverEveryFilterField(t *testing.T) {
	for _, path := range filter.Fields() {
		if _, ok := columns[path]; !ok {
			t.Fatalf("field %q has no column", path)
		}
	}
	if len(columns) != len(filter.Fields()) {
		t.Fatalf("columns has fields the filter does not know: %d vs %d", len(columns), len(filter.Fields()))
	}
}

// ------------------------------------------------------------
// SCAN
// ------------------------------------------------------------

func TestQueryEvents_ScansJoinedRows(t *testing.T) {
	at := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{eventRow(7, at)}}, nil
		},
	}
	repo := NewEventRepository(db)

	events, err := repo.QueryEvents(context.Background(), filter.MatchAll(), timerange.Interval{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	e := events[0]
	if e.ID != 7 || !e.OccurredAt.Equal(at) {
		t.Fatalf("unexpected event header: %+v", e)
	}
	if e.Content.Owner.Username != "alice" || e.Content.Location.Code != "US" {
		t.Fatalf("unexpected content: %+v", e.Content)
	}
	if e.Actor.Username != "bob" || e.Location.Name != "Canada" {
		t.Fatalf("unexpected viewer: %+v / %+v", e.Actor, e.Location)
	}
}

func TestQueryEvents_Errors(t *testing.T) {
	boom := errors.New("boom")

	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, boom
		},
	}
	if _, err := NewEventRepository(db).QueryEvents(context.Background(), filter.MatchAll(), timerange.Interval{}); !errors.Is(err, boom) {
		t.Fatalf("expected query error, got %v", err)
	}

	db = &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: boom}, nil
		},
	}
	if _, err := NewEventRepository(db).QueryEvents(context.Background(), filter.MatchAll(), timerange.Interval{}); !errors.Is(err, boom) {
		t.Fatalf("expected iteration error, got %v", err)
	}

	if _, err := NewEventRepository(&fakeDB{}).QueryEvents(context.Background(), filter.Eq("actor.email", "x"), timerange.Interval{}); !errors.Is(err, filter.ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

// ------------------------------------------------------------
// database/sql WIRING
// ------------------------------------------------------------

func TestSQLDB_RunsQueryThroughDriver(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	at := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "viewed_at", "id", "title", "created_at", "id", "username",
		"id", "name", "code", "id", "username", "id", "name", "code",
	}
	values := eventRow(7, at)
	row := make([]driver.Value, len(values))
	for i, v := range values {
		row[i] = v
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE v.viewed_at >= $1 AND c.code = $2")).
		WithArgs(from, "CA").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))

	repo := NewEventRepository(NewSQLDB(sqlDB))
	events, err := repo.QueryEvents(context.Background(), filter.Eq("location.code", "CA"), timerange.Interval{Start: from})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Location.Code != "CA" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventRepository_SQLDB_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err = NewEventRepository(NewSQLDB(sqlDB)).QueryEvents(context.Background(), filter.MatchAll(), timerange.Interval{})
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected query error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
