package aggregate

import (
	"fmt"
	"sort"

	"view-analytics-service/internal/analytics/core/domain"
)

type Dimension string

const (
	DimensionLocation Dimension = "location"
	DimensionActor    Dimension = "actor"
)

func (d Dimension) Valid() bool {
	return d == DimensionLocation || d == DimensionActor
}

type group struct {
	id       int64
	label    string
	contents contentSet
	events   int64
}

// GroupViews groups the selected events by dim and counts, per group, the
// distinct content viewed (Y) and the number of views (Z). Rows are ordered
// by Z descending, then label and entity id ascending.
func GroupViews(events []domain.Event, q Query, dim Dimension) ([]domain.GroupRow, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDimension, dim)
	}

	groups := make(map[int64]*group)
	for _, e := range events {
		if !q.selects(e) {
			continue
		}

		id, label := e.Location.ID, e.Location.Name
		if dim == DimensionActor {
			id, label = e.Actor.ID, e.Actor.Username
		}

		g, ok := groups[id]
		if !ok {
			g = &group{id: id, label: label, contents: contentSet{}}
			groups[id] = g
		}
		g.contents.add(e.Content.ID)
		g.events++
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.events != b.events {
			return a.events > b.events
		}
		if a.label != b.label {
			return a.label < b.label
		}
		return a.id < b.id
	})

	rows := make([]domain.GroupRow, 0, len(ordered))
	for _, g := range ordered {
		rows = append(rows, domain.GroupRow{X: g.label, Y: g.contents.count(), Z: g.events})
	}
	return rows, nil
}
