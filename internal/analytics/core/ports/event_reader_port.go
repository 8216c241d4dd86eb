package ports

import (
	"context"
	"time"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

// EventReaderPort reads a consistent snapshot of view events. An
// implementation may return a superset of the matching events; aggregates
// re-apply the predicate and interval.
type EventReaderPort interface {
	QueryEvents(ctx context.Context, pred filter.Expr, iv timerange.Interval) ([]domain.Event, error)
}

type ClockPort interface {
	Now() time.Time
}

// ResultCachePort stores fully sorted, unpaginated aggregate rows.
type ResultCachePort interface {
	Get(key string) (any, bool)
	Set(key string, value any, cost int64)
}
