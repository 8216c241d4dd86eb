package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"view-analytics-service/internal/analytics/core/domain"
)

// TopN is the size of every ranking, independent of pagination.
const TopN = 10

type Target string

const (
	TargetActor    Target = "actor"
	TargetLocation Target = "location"
	TargetContent  Target = "content"
)

func (t Target) Valid() bool {
	switch t {
	case TargetActor, TargetLocation, TargetContent:
		return true
	}
	return false
}

type candidate struct {
	id       int64
	label    string
	detail   string
	contents contentSet
	events   int64
}

// Top ranks entities of the target type by views over the selected events
// and keeps the TopN highest; ties go to the lower entity id.
//
// Actors are ranked by views of the content they own. Y is the distinct
// content count for actors and locations and the owner's username for
// content.
func Top(events []domain.Event, q Query, target Target) ([]domain.RankRow, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	byID := make(map[int64]*candidate)
	for _, e := range events {
		if !q.selects(e) {
			continue
		}

		var id int64
		var label, detail string
		switch target {
		case TargetActor:
			id, label = e.Content.Owner.ID, e.Content.Owner.Username
		case TargetLocation:
			id, label = e.Location.ID, e.Location.Name
		case TargetContent:
			id, label, detail = e.Content.ID, e.Content.Title, e.Content.Owner.Username
		}

		c, ok := byID[id]
		if !ok {
			c = &candidate{id: id, label: label, detail: detail, contents: contentSet{}}
			byID[id] = c
		}
		c.contents.add(e.Content.ID)
		c.events++
	}

	ranked := make([]*candidate, 0, len(byID))
	for _, c := range byID {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].events != ranked[j].events {
			return ranked[i].events > ranked[j].events
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	rows := make([]domain.RankRow, 0, len(ranked))
	for _, c := range ranked {
		y := c.detail
		if target != TargetContent {
			y = strconv.FormatInt(c.contents.count(), 10)
		}
		rows = append(rows, domain.RankRow{X: c.label, Y: y, Z: c.events})
	}
	return rows, nil
}
