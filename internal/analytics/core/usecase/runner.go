package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/ports"
	"view-analytics-service/internal/analytics/core/timerange"
)

// ClockFunc adapts a function such as time.Now to ports.ClockPort.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Deps are shared by every analytics use case. Cache is optional.
type Deps struct {
	Reader   ports.EventReaderPort
	Cache    ports.ResultCachePort
	Clock    ports.ClockPort
	Resolver *timerange.Resolver
	Log      *zap.Logger
}

type runner struct {
	reader   ports.EventReaderPort
	cache    ports.ResultCachePort
	clock    ports.ClockPort
	resolver *timerange.Resolver
	log      *zap.Logger
}

func newRunner(d Deps) runner {
	r := runner{
		reader:   d.Reader,
		cache:    d.Cache,
		clock:    d.Clock,
		resolver: d.Resolver,
		log:      d.Log,
	}
	if r.clock == nil {
		r.clock = ClockFunc(time.Now)
	}
	if r.resolver == nil {
		r.resolver = timerange.NewResolver(time.UTC)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

func (r runner) reject(kind string, err error) error {
	r.log.Warn("Rejected analytics request",
		zap.String("kind", kind),
		zap.String("param", InvalidParam(err)),
		zap.Error(err))
	return err
}

// cacheKey identifies a computation by everything its rows depend on.
func cacheKey(kind string, q aggregate.Query, parts ...string) string {
	pred, err := json.Marshal(q.Predicate)
	if err != nil {
		pred = []byte(fmt.Sprintf("%#v", q.Predicate))
	}
	return strings.Join(append([]string{
		kind,
		boundKey(q.Interval.Start),
		boundKey(q.Interval.End),
		string(pred),
	}, parts...), "|")
}

func boundKey(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// load returns cached rows for key or computes them from the events the
// reader returns for q.
func load[T any](ctx context.Context, r runner, kind, key string, q aggregate.Query, compute func([]domain.Event) ([]T, error)) ([]T, error) {
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			if rows, ok := v.([]T); ok {
				r.log.Debug("Analytics cache hit", zap.String("kind", kind))
				return rows, nil
			}
		}
	}

	started := time.Now()
	events, err := r.reader.QueryEvents(ctx, q.Predicate, q.Interval)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	rows, err := compute(events)
	if err != nil {
		return nil, err
	}

	r.log.Info("Computed analytics",
		zap.String("kind", kind),
		zap.Stringer("interval", q.Interval),
		zap.Int("events", len(events)),
		zap.Int("rows", len(rows)),
		zap.Duration("took", time.Since(started)))

	if r.cache != nil {
		r.cache.Set(key, rows, int64(len(rows))+1)
	}
	return rows, nil
}

func restrictToOwner(pred filter.Expr, ownerID int64) filter.Expr {
	owner := filter.Eq("content.owner.id", ownerID)
	if pred.IsMatchAll() {
		return owner
	}
	return filter.And(pred, owner)
}
