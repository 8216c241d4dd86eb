package fiber

import "time"

// CreateViewRequest represents a single view
// @Description View recording DTO
type CreateViewRequest struct {
	BlogID    int64      `json:"blog_id" example:"100"`
	UserID    int64      `json:"user_id" example:"11"`
	CountryID int64      `json:"country_id" example:"2"`
	ViewedAt  *time.Time `json:"viewed_at" example:"2024-02-10T08:30:00Z"`
}

type CreateViewResponse struct {
	Status string `json:"status" example:"created"`
}

type BulkCreateViewsRequest struct {
	Views []CreateViewRequest `json:"views"`
}

type BulkCreateViewsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_view"`
	Message string `json:"message,omitempty" example:"viewed_at cannot be in the future"`
}
