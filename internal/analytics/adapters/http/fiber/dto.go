package fiber

import "view-analytics-service/internal/analytics/core/domain"

// GroupRowResponse is one group: x is the location or username, y the
// distinct blogs viewed and z the number of views.
type GroupRowResponse struct {
	X string `json:"x" example:"USA"`
	Y int64  `json:"y" example:"4"`
	Z int64  `json:"z" example:"27"`
}

// RankRowResponse is one ranked entity.
type RankRowResponse struct {
	X string `json:"x" example:"alice"`
	Y string `json:"y" example:"3"`
	Z int64  `json:"z" example:"120"`
}

// SeriesRowResponse is one period. z is the growth in percent against the
// previous period, null when that period had no views.
type SeriesRowResponse struct {
	X string   `json:"x" example:"2024-02 (5 blogs)"`
	Y int64    `json:"y" example:"150"`
	Z *float64 `json:"z" example:"50"`
}

type BlogViewsResponse struct {
	Count      int                `json:"count" example:"2"`
	Page       int                `json:"page" example:"1"`
	PageSize   int                `json:"page_size" example:"10"`
	TotalPages int                `json:"total_pages" example:"1"`
	Results    []GroupRowResponse `json:"results"`
}

type TopResponse struct {
	Count      int               `json:"count" example:"10"`
	Page       int               `json:"page" example:"1"`
	PageSize   int               `json:"page_size" example:"10"`
	TotalPages int               `json:"total_pages" example:"1"`
	Results    []RankRowResponse `json:"results"`
}

type PerformanceResponse struct {
	Count      int                 `json:"count" example:"12"`
	Page       int                 `json:"page" example:"1"`
	PageSize   int                 `json:"page_size" example:"10"`
	TotalPages int                 `json:"total_pages" example:"2"`
	Results    []SeriesRowResponse `json:"results"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message" example:"unsupported operator: xor"`
	Param   string `json:"param,omitempty" example:"filters"`
}

func toBlogViewsResponse(p domain.Page[domain.GroupRow]) BlogViewsResponse {
	resp := BlogViewsResponse{
		Count:      p.Count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		Results:    make([]GroupRowResponse, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		resp.Results = append(resp.Results, GroupRowResponse{X: r.X, Y: r.Y, Z: r.Z})
	}
	return resp
}

func toTopResponse(p domain.Page[domain.RankRow]) TopResponse {
	resp := TopResponse{
		Count:      p.Count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		Results:    make([]RankRowResponse, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		resp.Results = append(resp.Results, RankRowResponse{X: r.X, Y: r.Y, Z: r.Z})
	}
	return resp
}

func toPerformanceResponse(p domain.Page[domain.SeriesRow]) PerformanceResponse {
	resp := PerformanceResponse{
		Count:      p.Count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		Results:    make([]SeriesRowResponse, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		resp.Results = append(resp.Results, SeriesRowResponse{X: r.X, Y: r.Y, Z: r.Z})
	}
	return resp
}
