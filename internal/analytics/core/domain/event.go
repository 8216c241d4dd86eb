package domain

import "time"

type Actor struct {
	ID       int64
	Username string
}

type Location struct {
	ID   int64
	Name string
	Code string
}

// Content is a blog post. Owner is its author, which can differ from the
// actor that viewed it.
type Content struct {
	ID        int64
	Title     string
	Owner     Actor
	Location  Location
	CreatedAt time.Time
}

// Event is a single view of a Content item.
type Event struct {
	ID         int64
	OccurredAt time.Time
	Content    Content
	Actor      Actor    // viewer
	Location   Location // where the view happened
}
