package ports

import (
	"context"

	"view-analytics-service/internal/views/core/domain"
)

type ViewRepositoryPort interface {
	// InsertView:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertView(ctx context.Context, v *domain.View) (created bool, err error)

	// InsertViews writes all views in one statement and returns how many
	// were new. Duplicates, within the batch or against stored rows, are
	// skipped.
	InsertViews(ctx context.Context, views []domain.View) (created int, err error)
}
