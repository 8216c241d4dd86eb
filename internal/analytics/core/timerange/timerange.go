// Package timerange resolves range keywords and explicit bounds into
// half-open intervals, and steps through calendar periods.
package timerange

import (
	"errors"
	"fmt"
	"time"
)

type Keyword string

const (
	Day   Keyword = "day"
	Week  Keyword = "week"
	Month Keyword = "month"
	Year  Keyword = "year"
	All   Keyword = "all"
)

var (
	ErrInvalidRange        = errors.New("invalid time range")
	ErrUnknownRangeKeyword = errors.New("unknown range keyword")
)

type Error struct {
	Param string
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsGranularity reports whether k can partition an interval.
func (k Keyword) IsGranularity() bool {
	switch k {
	case Day, Week, Month, Year:
		return true
	}
	return false
}

// Interval is the half-open range [Start, End). A zero Start or End leaves
// that side open.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) HasStart() bool { return !i.Start.IsZero() }
func (i Interval) HasEnd() bool   { return !i.End.IsZero() }

func (i Interval) Unbounded() bool {
	return !i.HasStart() && !i.HasEnd()
}

func (i Interval) Contains(t time.Time) bool {
	if i.HasStart() && t.Before(i.Start) {
		return false
	}
	if i.HasEnd() && !t.Before(i.End) {
		return false
	}
	return true
}

func (i Interval) String() string {
	start, end := "-inf", "+inf"
	if i.HasStart() {
		start = i.Start.Format(time.RFC3339)
	}
	if i.HasEnd() {
		end = i.End.Format(time.RFC3339)
	}
	return "[" + start + ", " + end + ")"
}

// Resolver computes calendar boundaries in a fixed time zone.
type Resolver struct {
	loc *time.Location
}

func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve returns the calendar period named by keyword that contains ref.
// All yields an unbounded interval.
func (r *Resolver) Resolve(keyword Keyword, ref time.Time) (Interval, error) {
	if keyword == All {
		return Interval{}, nil
	}
	if !keyword.IsGranularity() {
		return Interval{}, &Error{Param: "range", Value: string(keyword), Err: ErrUnknownRangeKeyword}
	}
	start := r.Truncate(ref, keyword)
	return Interval{Start: start, End: AddPeriods(start, keyword, 1)}, nil
}

// Bounds resolves a keyword together with optional explicit bounds. When
// both start and end are given they replace the keyword entirely; a single
// bound replaces only its side of the keyword's interval.
func (r *Resolver) Bounds(keyword Keyword, start, end string, ref time.Time) (Interval, error) {
	var iv Interval
	if start == "" || end == "" {
		var err error
		if iv, err = r.Resolve(keyword, ref); err != nil {
			return Interval{}, err
		}
	}
	return r.Override(iv, start, end)
}

// Override replaces each side of iv for which an explicit bound is given
// and checks that the result is not empty.
func (r *Resolver) Override(iv Interval, start, end string) (Interval, error) {
	var err error
	if start != "" {
		if iv.Start, err = r.ParseDate("start_date", start); err != nil {
			return Interval{}, err
		}
	}
	if end != "" {
		if iv.End, err = r.ParseDate("end_date", end); err != nil {
			return Interval{}, err
		}
	}

	if iv.HasStart() && iv.HasEnd() && !iv.End.After(iv.Start) {
		if end == "" {
			return Interval{}, &Error{Param: "start_date", Value: start, Err: ErrInvalidRange}
		}
		return Interval{}, &Error{Param: "end_date", Value: end, Err: ErrInvalidRange}
	}
	return iv, nil
}

// Trailing returns the n whole periods of granularity g that end with the
// period containing ref.
func (r *Resolver) Trailing(g Keyword, n int, ref time.Time) (Interval, error) {
	if !g.IsGranularity() {
		return Interval{}, &Error{Param: "range", Value: string(g), Err: ErrUnknownRangeKeyword}
	}
	end := AddPeriods(r.Truncate(ref, g), g, 1)
	return Interval{Start: AddPeriods(end, g, -n), End: end}, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate accepts a calendar date (midnight in the resolver's zone), a
// local date-time, or an RFC 3339 timestamp.
func (r *Resolver) ParseDate(param, s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{Param: param, Value: s, Err: ErrInvalidRange}
}

// Truncate returns the first instant of the period of granularity g that
// contains t. Weeks start on Monday.
func (r *Resolver) Truncate(t time.Time, g Keyword) time.Time {
	return Truncate(t.In(r.loc), g)
}

// Truncate is Resolver.Truncate in the location of t.
func Truncate(t time.Time, g Keyword) time.Time {
	loc := t.Location()
	y, m, d := t.Date()

	switch g {
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Week:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// AddPeriods moves t by n periods of granularity g. Month and year steps
// clamp the day to the end of the target month.
func AddPeriods(t time.Time, g Keyword, n int) time.Time {
	switch g {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Year:
		return addMonths(t, 12*n)
	}
	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// Label formats the period of granularity g starting at t.
func Label(t time.Time, g Keyword) string {
	switch g {
	case Day:
		return t.Format("2006-01-02")
	case Week:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case Month:
		return t.Format("2006-01")
	case Year:
		return t.Format("2006")
	}
	return t.Format(time.RFC3339)
}
