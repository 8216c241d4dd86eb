package pagination

import (
	"errors"

	"view-analytics-service/internal/analytics/core/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrPageSizeOutOfBounds = errors.New("page_size must be between 1 and 100")
	ErrInvalidPage         = errors.New("page must be at least 1")
)

// Validate checks page and page size without slicing anything.
func Validate(page, pageSize int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return ErrPageSizeOutOfBounds
	}
	return nil
}

// Paginate returns one page of already sorted rows. A page past the last
// one is empty, not an error.
func Paginate[T any](rows []T, page, pageSize int) (domain.Page[T], error) {
	if err := Validate(page, pageSize); err != nil {
		return domain.Page[T]{}, err
	}

	count := len(rows)
	out := domain.Page[T]{
		Count:      count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (count + pageSize - 1) / pageSize,
		Results:    []T{},
	}

	if page > out.TotalPages {
		return out, nil
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > count {
		end = count
	}
	out.Results = rows[start:end:end]
	return out, nil
}
