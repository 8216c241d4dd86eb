package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/pagination"
	"view-analytics-service/internal/analytics/core/timerange"
)

// MaxPeriods bounds the length of a series.
const MaxPeriods = 3660

// trailingPeriods is the default window length per granularity when the
// caller gives no bounds.
var trailingPeriods = map[timerange.Keyword]int{
	timerange.Day:   30,
	timerange.Week:  12,
	timerange.Month: 12,
	timerange.Year:  3,
}

type PerformanceInput struct {
	Compare   string
	UserID    *int64
	StartDate string
	EndDate   string
	Filters   []byte
	Page      PageRequest
}

type GetPerformanceUseCase struct {
	runner
}

func NewGetPerformanceUseCase(deps Deps) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{runner: newRunner(deps)}
}

// Execute builds the contiguous period series with growth against the
// previous period. With UserID set only views of that user's content count.
func (uc *GetPerformanceUseCase) Execute(ctx context.Context, in PerformanceInput) (domain.Page[domain.SeriesRow], error) {
	const kind = "performance"

	g, err := parseGranularity(in.Compare)
	if err != nil {
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	if in.UserID != nil && *in.UserID <= 0 {
		err := &ValidationError{Param: "user_id", Value: strconv.FormatInt(*in.UserID, 10), Err: ErrInvalidUserID}
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	page := in.Page.normalize()
	if err := validatePage(page.Page, page.PageSize); err != nil {
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	pred, err := parseFilters(in.Filters)
	if err != nil {
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	if in.UserID != nil {
		pred = restrictToOwner(pred, *in.UserID)
	}

	iv, err := uc.resolver.Trailing(g, trailingPeriods[g], uc.clock.Now())
	if err != nil {
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	if iv, err = uc.resolver.Override(iv, in.StartDate, in.EndDate); err != nil {
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}
	if _, err := aggregate.Partition(iv, g, MaxPeriods); err != nil {
		err = &ValidationError{Param: "compare", Value: string(g), Err: err}
		return domain.Page[domain.SeriesRow]{}, uc.reject(kind, err)
	}

	q := aggregate.Query{Predicate: pred, Interval: iv}
	rows, err := load(ctx, uc.runner, kind, cacheKey(kind, q, string(g)), q,
		func(events []domain.Event) ([]domain.SeriesRow, error) {
			periods, err := aggregate.Periods(events, q, g, MaxPeriods)
			if err != nil {
				return nil, err
			}
			return aggregate.Series(periods), nil
		})
	if err != nil {
		uc.log.Error("Failed to compute performance series", zap.String("compare", string(g)), zap.Error(err))
		return domain.Page[domain.SeriesRow]{}, err
	}

	return pagination.Paginate(rows, page.Page, page.PageSize)
}
