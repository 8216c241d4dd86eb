package usecase

import (
	"context"

	"go.uber.org/zap"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/pagination"
	"view-analytics-service/internal/analytics/core/timerange"
)

const defaultBlogViewsRange = timerange.Month

type BlogViewsInput struct {
	ObjectType string
	Window     Window
	Filters    []byte
	Page       PageRequest
}

type GetBlogViewsUseCase struct {
	runner
}

func NewGetBlogViewsUseCase(deps Deps) *GetBlogViewsUseCase {
	return &GetBlogViewsUseCase{runner: newRunner(deps)}
}

// Execute groups the selected views by location or viewing actor.
// Every parameter is validated before any event is read.
func (uc *GetBlogViewsUseCase) Execute(ctx context.Context, in BlogViewsInput) (domain.Page[domain.GroupRow], error) {
	const kind = "blog-views"

	dim, err := parseDimension(in.ObjectType)
	if err != nil {
		return domain.Page[domain.GroupRow]{}, uc.reject(kind, err)
	}
	page := in.Page.normalize()
	if err := validatePage(page.Page, page.PageSize); err != nil {
		return domain.Page[domain.GroupRow]{}, uc.reject(kind, err)
	}
	pred, err := parseFilters(in.Filters)
	if err != nil {
		return domain.Page[domain.GroupRow]{}, uc.reject(kind, err)
	}

	keyword := timerange.Keyword(in.Window.Range)
	if keyword == "" {
		keyword = defaultBlogViewsRange
	}
	iv, err := uc.resolver.Bounds(keyword, in.Window.StartDate, in.Window.EndDate, uc.clock.Now())
	if err != nil {
		return domain.Page[domain.GroupRow]{}, uc.reject(kind, err)
	}

	q := aggregate.Query{Predicate: pred, Interval: iv}
	rows, err := load(ctx, uc.runner, kind, cacheKey(kind, q, string(dim)), q,
		func(events []domain.Event) ([]domain.GroupRow, error) {
			return aggregate.GroupViews(events, q, dim)
		})
	if err != nil {
		uc.log.Error("Failed to compute blog views", zap.String("object_type", string(dim)), zap.Error(err))
		return domain.Page[domain.GroupRow]{}, err
	}

	return pagination.Paginate(rows, page.Page, page.PageSize)
}
