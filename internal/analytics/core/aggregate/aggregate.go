// Package aggregate computes grouped counts, top-N rankings and period
// series over a snapshot of view events. Every function is a pure function
// of its inputs.
package aggregate

import (
	"errors"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

var (
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrUnboundedInterval  = errors.New("interval must be bounded on both sides")
	ErrTooManyPeriods     = errors.New("too many periods")
)

// Query selects the events an aggregate runs over. It is applied even when
// the store already pushed it down, so a store may over-fetch safely.
type Query struct {
	Predicate filter.Expr
	Interval  timerange.Interval
}

func (q Query) selects(e domain.Event) bool {
	if !q.Interval.Contains(e.OccurredAt) {
		return false
	}
	if q.Predicate.Op == "" {
		return true
	}
	return q.Predicate.Match(e)
}

// contentSet counts distinct content ids.
type contentSet map[int64]struct{}

func (s contentSet) add(id int64) { s[id] = struct{}{} }
func (s contentSet) count() int64 { return int64(len(s)) }
