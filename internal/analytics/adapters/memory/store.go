// Package memory holds view events in process memory and answers reader
// queries by evaluating the compiled filter directly.
package memory

import (
	"context"
	"sort"
	"sync"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewEventStore(events ...domain.Event) *EventStore {
	s := &EventStore{}
	s.Add(events...)
	return s
}

// Add appends events. Readers that already hold a snapshot do not see them.
func (s *EventStore) Add(events ...domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, events...)
	sort.SliceStable(s.events, func(i, j int) bool {
		return s.events[i].OccurredAt.Before(s.events[j].OccurredAt)
	})
}

func (s *EventStore) QueryEvents(ctx context.Context, pred filter.Expr, iv timerange.Interval) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0)
	for _, e := range s.events {
		if iv.Contains(e.OccurredAt) && pred.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}
