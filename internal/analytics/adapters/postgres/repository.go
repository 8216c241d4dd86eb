package postgres

import (
	"context"
	"fmt"
	"time"

	"view-analytics-service/internal/analytics/core/domain"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/timerange"
)

const selectEvents = `
SELECT
    v.id, v.viewed_at,
    b.id, b.title, b.created_at,
    o.id, o.username,
    bc.id, bc.name, bc.code,
    u.id, u.username,
    c.id, c.name, c.code
FROM blog_views v
JOIN blogs b ON b.id = v.blog_id
JOIN users o ON o.id = b.author_id
JOIN countries bc ON bc.id = b.country_id
JOIN users u ON u.id = v.user_id
JOIN countries c ON c.id = v.country_id
WHERE `

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

// QueryEvents pushes the predicate and interval down into one query and
// returns the matching views in time order.
func (r *EventRepository) QueryEvents(ctx context.Context, pred filter.Expr, iv timerange.Interval) ([]domain.Event, error) {
	var w whereClause
	where, err := w.build(pred, iv)
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, selectEvents+where+"\nORDER BY v.viewed_at, v.id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			e         domain.Event
			viewedAt  time.Time
			createdAt time.Time
		)
		if err := rows.Scan(
			&e.ID, &viewedAt,
			&e.Content.ID, &e.Content.Title, &createdAt,
			&e.Content.Owner.ID, &e.Content.Owner.Username,
			&e.Content.Location.ID, &e.Content.Location.Name, &e.Content.Location.Code,
			&e.Actor.ID, &e.Actor.Username,
			&e.Location.ID, &e.Location.Name, &e.Location.Code,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.OccurredAt = viewedAt.UTC()
		e.Content.CreatedAt = createdAt.UTC()
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
