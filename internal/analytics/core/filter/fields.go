package filter

import (
	"sort"

	"view-analytics-service/internal/analytics/core/domain"
)

type Kind int

const (
	KindInt Kind = iota + 1
	KindString
)

// Field is a queryable dot-path reachable from an event by relation traversal.
type Field struct {
	Path  string
	Kind  Kind
	value func(e domain.Event) any
}

var fields = map[string]Field{}

func register(path string, kind Kind, value func(e domain.Event) any) {
	fields[path] = Field{Path: path, Kind: kind, value: value}
}

func init() {
	register("actor.id", KindInt, func(e domain.Event) any { return e.Actor.ID })
	register("actor.username", KindString, func(e domain.Event) any { return e.Actor.Username })

	register("location.id", KindInt, func(e domain.Event) any { return e.Location.ID })
	register("location.name", KindString, func(e domain.Event) any { return e.Location.Name })
	register("location.code", KindString, func(e domain.Event) any { return e.Location.Code })

	register("content.id", KindInt, func(e domain.Event) any { return e.Content.ID })
	register("content.title", KindString, func(e domain.Event) any { return e.Content.Title })
	register("content.owner.id", KindInt, func(e domain.Event) any { return e.Content.Owner.ID })
	register("content.owner.username", KindString, func(e domain.Event) any { return e.Content.Owner.Username })
	register("content.location.id", KindInt, func(e domain.Event) any { return e.Content.Location.ID })
	register("content.location.name", KindString, func(e domain.Event) any { return e.Content.Location.Name })
	register("content.location.code", KindString, func(e domain.Event) any { return e.Content.Location.Code })
}

// Lookup returns the allow-listed field for path.
func Lookup(path string) (Field, bool) {
	f, ok := fields[path]
	return f, ok
}

// Fields lists every allow-listed path in lexical order.
func Fields() []string {
	out := make([]string, 0, len(fields))
	for p := range fields {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
