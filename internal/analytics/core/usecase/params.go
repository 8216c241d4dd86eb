package usecase

import (
	"fmt"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/pagination"
	"view-analytics-service/internal/analytics/core/timerange"
)

// Window is the time selection shared by every analytics request. Empty
// fields take the endpoint's default.
type Window struct {
	Range     string
	StartDate string
	EndDate   string
}

// PageRequest selects one page of the result rows. Zero values take the
// defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page == 0 {
		p.Page = pagination.DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = pagination.DefaultPageSize
	}
	return p
}

var dimensionAliases = map[string]aggregate.Dimension{
	"location": aggregate.DimensionLocation,
	"country":  aggregate.DimensionLocation,
	"actor":    aggregate.DimensionActor,
	"user":     aggregate.DimensionActor,
}

var targetAliases = map[string]aggregate.Target{
	"actor":    aggregate.TargetActor,
	"user":     aggregate.TargetActor,
	"location": aggregate.TargetLocation,
	"country":  aggregate.TargetLocation,
	"content":  aggregate.TargetContent,
	"blog":     aggregate.TargetContent,
}

func parseDimension(s string) (aggregate.Dimension, error) {
	d, ok := dimensionAliases[s]
	if !ok {
		return "", &ValidationError{Param: "object_type", Value: s, Err: ErrInvalidDimension}
	}
	return d, nil
}

func parseTarget(s string) (aggregate.Target, error) {
	t, ok := targetAliases[s]
	if !ok {
		return "", &ValidationError{Param: "top", Value: s, Err: ErrInvalidTarget}
	}
	return t, nil
}

func parseGranularity(s string) (timerange.Keyword, error) {
	g := timerange.Keyword(s)
	if !g.IsGranularity() {
		return "", &ValidationError{Param: "compare", Value: s, Err: ErrInvalidGranularity}
	}
	return g, nil
}

func parseFilters(raw []byte) (filter.Expr, error) {
	pred, err := filter.Parse(raw)
	if err != nil {
		return filter.Expr{}, fmt.Errorf("filters: %w", err)
	}
	return pred, nil
}
