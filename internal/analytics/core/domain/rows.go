package domain

// GroupRow is one group of the grouped views aggregate.
// X = group label, Y = distinct content, Z = view count.
type GroupRow struct {
	X string `json:"x"`
	Y int64  `json:"y"`
	Z int64  `json:"z"`
}

// RankRow is one entry of a top-N ranking. Y is a label for content rankings
// and a decimal distinct-content count for actor and location rankings.
type RankRow struct {
	X string `json:"x"`
	Y string `json:"y"`
	Z int64  `json:"z"`
}

// SeriesRow is one period of a performance series. Z is the growth
// percentage against the previous period; nil means growth from a zero
// baseline, which has no finite value.
type SeriesRow struct {
	X string   `json:"x"`
	Y int64    `json:"y"`
	Z *float64 `json:"z"`
}

type Page[T any] struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Results    []T `json:"results"`
}
