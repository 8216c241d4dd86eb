package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/timerange"
)

// Period holds the counts of one sub-period of a series.
type Period struct {
	Start    time.Time
	End      time.Time
	Label    string
	Views    int64
	Contents int64
	// Growth is the percentage change in Views against the previous
	// period, rounded to one decimal. The first period has growth 0.
	// Growth is nil when the previous period had no views and this one
	// has some: the change from zero is unbounded.
	Growth *float64
}

// Partition splits the interval into the calendar periods of granularity g
// it overlaps, in the location of the interval start. The first and last
// periods are clipped to the interval. maxPeriods <= 0 means no limit.
func Partition(iv timerange.Interval, g timerange.Keyword, maxPeriods int) ([]Period, error) {
	if !g.IsGranularity() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, g)
	}
	if !iv.HasStart() || !iv.HasEnd() {
		return nil, ErrUnboundedInterval
	}

	anchor := timerange.Truncate(iv.Start, g)

	var periods []Period
	for i := 0; ; i++ {
		start := timerange.AddPeriods(anchor, g, i)
		if !start.Before(iv.End) {
			break
		}
		if maxPeriods > 0 && len(periods) == maxPeriods {
			return nil, fmt.Errorf("%w: more than %d %s periods", ErrTooManyPeriods, maxPeriods, g)
		}
		label := timerange.Label(start, g)
		if start.Before(iv.Start) {
			start = iv.Start
		}
		end := timerange.AddPeriods(anchor, g, i+1)
		if end.After(iv.End) {
			end = iv.End
		}
		periods = append(periods, Period{Start: start, End: end, Label: label})
	}
	return periods, nil
}

// Periods partitions the query interval and counts the selected events in
// each period. Every period is returned, including empty ones.
func Periods(events []domain.Event, q Query, g timerange.Keyword, maxPeriods int) ([]Period, error) {
	periods, err := Partition(q.Interval, g, maxPeriods)
	if err != nil {
		return nil, err
	}

	contents := make([]contentSet, len(periods))
	for i := range contents {
		contents[i] = contentSet{}
	}

	for _, e := range events {
		if !q.selects(e) {
			continue
		}
		i := sort.Search(len(periods), func(i int) bool {
			return periods[i].End.After(e.OccurredAt)
		})
		if i == len(periods) {
			continue
		}
		periods[i].Views++
		contents[i].add(e.Content.ID)
	}

	for i := range periods {
		periods[i].Contents = contents[i].count()
		if i == 0 {
			zero := 0.0
			periods[i].Growth = &zero
			continue
		}
		periods[i].Growth = Growth(periods[i-1].Views, periods[i].Views)
	}
	return periods, nil
}

// Growth returns the percentage change from prev to cur rounded to one
// decimal, 0 when both are zero, and nil when only prev is zero.
func Growth(prev, cur int64) *float64 {
	var g float64
	switch {
	case prev == 0 && cur == 0:
		g = 0
	case prev == 0:
		return nil
	default:
		pct := float64(cur-prev) / float64(prev) * 100
		g = math.Round(pct*10) / 10
	}
	return &g
}

// Series renders periods as rows ordered by period label. Growth is taken
// from the chronological computation and travels with its row.
func Series(periods []Period) []domain.SeriesRow {
	ordered := make([]Period, len(periods))
	copy(ordered, periods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Label < ordered[j].Label
	})

	rows := make([]domain.SeriesRow, 0, len(ordered))
	for _, p := range ordered {
		rows = append(rows, domain.SeriesRow{
			X: fmt.Sprintf("%s (%d blogs)", p.Label, p.Contents),
			Y: p.Views,
			Z: p.Growth,
		})
	}
	return rows
}
