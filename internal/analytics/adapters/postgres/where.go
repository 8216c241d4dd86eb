package postgres

import (
	"fmt"
	"strings"

	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

// columns maps every filterable field onto the aliases of selectEvents.
var columns = map[string]string{
	"actor.id":               "u.id",
	"actor.username":         "u.username",
	"location.id":            "c.id",
	"location.name":          "c.name",
	"location.code":          "c.code",
	"content.id":             "b.id",
	"content.title":          "b.title",
	"content.owner.id":       "o.id",
	"content.owner.username": "o.username",
	"content.location.id":    "bc.id",
	"content.location.name":  "bc.name",
	"content.location.code":  "bc.code",
}

// whereClause collects placeholders in the order they appear in the SQL.
type whereClause struct {
	args []any
}

func (w *whereClause) bind(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// build renders the interval and predicate as one parameterized condition.
func (w *whereClause) build(pred filter.Expr, iv timerange.Interval) (string, error) {
	var conds []string
	if iv.HasStart() {
		conds = append(conds, "v.viewed_at >= "+w.bind(iv.Start))
	}
	if iv.HasEnd() {
		conds = append(conds, "v.viewed_at < "+w.bind(iv.End))
	}

	if !pred.IsMatchAll() && pred.Op != "" {
		sql, err := filter.Fold(pred, filter.Folder[string]{
			Eq: func(field filter.Field, value any) (string, error) {
				col, ok := columns[field.Path]
				if !ok {
					return "", fmt.Errorf("no column for field %q", field.Path)
				}
				return col + " = " + w.bind(value), nil
			},
			And: func(args []string) string { return join(args, " AND ", "TRUE") },
			Or:  func(args []string) string { return join(args, " OR ", "FALSE") },
			Not: func(arg string) string { return "NOT (" + arg + ")" },
		})
		if err != nil {
			return "", err
		}
		conds = append(conds, sql)
	}

	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), nil
}

func join(args []string, sep, empty string) string {
	switch len(args) {
	case 0:
		return empty
	case 1:
		return args[0]
	}
	return "(" + strings.Join(args, sep) + ")"
}
