package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"view-analytics-service/internal/views/core/domain"
	"view-analytics-service/internal/views/core/ports"
)

// DB is satisfied by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type ViewRepository struct {
	db DB
}

func NewViewRepository(db DB) *ViewRepository {
	return &ViewRepository{db: db}
}

var _ ports.ViewRepositoryPort = (*ViewRepository)(nil)

const insertViewSQL = `
INSERT INTO blog_views (
    blog_id,
    user_id,
    country_id,
    viewed_at,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// Timestamps travel as text so the array needs no driver-specific encoding.
const insertViewsSQL = `
INSERT INTO blog_views (
    blog_id,
    user_id,
    country_id,
    viewed_at,
    dedupe_key
)
SELECT * FROM unnest(
    $1::bigint[],
    $2::bigint[],
    $3::bigint[],
    $4::timestamptz[],
    $5::text[]
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// foreignKeyViolation is the SQLSTATE of a failed REFERENCES check.
const foreignKeyViolation = "23503"

func (r *ViewRepository) InsertView(ctx context.Context, v *domain.View) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertViewSQL,
		v.BlogID,
		v.UserID,
		v.CountryID,
		v.ViewedAt,
		v.DedupeKey,
	)
	if err != nil {
		return false, mapError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *ViewRepository) InsertViews(ctx context.Context, views []domain.View) (int, error) {
	if len(views) == 0 {
		return 0, nil
	}

	blogIDs := make([]int64, len(views))
	userIDs := make([]int64, len(views))
	countryIDs := make([]int64, len(views))
	viewedAt := make([]string, len(views))
	keys := make([]string, len(views))
	for i, v := range views {
		blogIDs[i] = v.BlogID
		userIDs[i] = v.UserID
		countryIDs[i] = v.CountryID
		viewedAt[i] = v.ViewedAt.UTC().Format(time.RFC3339Nano)
		keys[i] = v.DedupeKey
	}

	res, err := r.db.ExecContext(ctx, insertViewsSQL,
		pq.Array(blogIDs),
		pq.Array(userIDs),
		pq.Array(countryIDs),
		pq.Array(viewedAt),
		pq.Array(keys),
	)
	if err != nil {
		return 0, mapError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrUnknownReference, pqErr.Constraint)
	}
	return fmt.Errorf("insert view: %w", err)
}
