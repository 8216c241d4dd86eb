package usecase

import (
	"context"

	"go.uber.org/zap"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/pagination"
	"view-analytics-service/internal/analytics/core/timerange"
)

const defaultTopRange = timerange.All

type TopInput struct {
	Top     string
	Window  Window
	Filters []byte
	Page    PageRequest
}

type GetTopUseCase struct {
	runner
}

func NewGetTopUseCase(deps Deps) *GetTopUseCase {
	return &GetTopUseCase{runner: newRunner(deps)}
}

// Execute ranks the ten most viewed actors, locations or contents. The page
// parameters slice the ranking; they never widen it.
func (uc *GetTopUseCase) Execute(ctx context.Context, in TopInput) (domain.Page[domain.RankRow], error) {
	const kind = "top"

	target, err := parseTarget(in.Top)
	if err != nil {
		return domain.Page[domain.RankRow]{}, uc.reject(kind, err)
	}
	page := in.Page.normalize()
	if err := validatePage(page.Page, page.PageSize); err != nil {
		return domain.Page[domain.RankRow]{}, uc.reject(kind, err)
	}
	pred, err := parseFilters(in.Filters)
	if err != nil {
		return domain.Page[domain.RankRow]{}, uc.reject(kind, err)
	}

	keyword := timerange.Keyword(in.Window.Range)
	if keyword == "" {
		keyword = defaultTopRange
	}
	iv, err := uc.resolver.Bounds(keyword, in.Window.StartDate, in.Window.EndDate, uc.clock.Now())
	if err != nil {
		return domain.Page[domain.RankRow]{}, uc.reject(kind, err)
	}

	q := aggregate.Query{Predicate: pred, Interval: iv}
	rows, err := load(ctx, uc.runner, kind, cacheKey(kind, q, string(target)), q,
		func(events []domain.Event) ([]domain.RankRow, error) {
			return aggregate.Top(events, q, target)
		})
	if err != nil {
		uc.log.Error("Failed to compute top ranking", zap.String("top", string(target)), zap.Error(err))
		return domain.Page[domain.RankRow]{}, err
	}

	return pagination.Paginate(rows, page.Page, page.PageSize)
}
