package usecase

import (
	"errors"
	"fmt"

	"view-analytics-service/internal/analytics/core/aggregate"
	"view-analytics-service/internal/analytics/core/filter"
	"view-analytics-service/internal/analytics/core/pagination"
	"view-analytics-service/internal/analytics/core/timerange"
)

var (
	ErrInvalidDimension    = aggregate.ErrInvalidDimension
	ErrInvalidTarget       = aggregate.ErrInvalidTarget
	ErrInvalidGranularity  = aggregate.ErrInvalidGranularity
	ErrTooManyPeriods      = aggregate.ErrTooManyPeriods
	ErrPageSizeOutOfBounds = pagination.ErrPageSizeOutOfBounds
	ErrInvalidPage         = pagination.ErrInvalidPage
	ErrInvalidUserID       = errors.New("user_id must be positive")
)

// ValidationError names the request parameter that failed validation.
type ValidationError struct {
	Param string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err rejects the caller's input, as opposed
// to a failure while reading events.
func IsInvalidInput(err error) bool {
	var (
		ve *ValidationError
		fe *filter.Error
		te *timerange.Error
	)
	return errors.As(err, &ve) || errors.As(err, &fe) || errors.As(err, &te)
}

// InvalidParam returns the offending parameter of an input error.
func InvalidParam(err error) string {
	var (
		ve *ValidationError
		te *timerange.Error
		fe *filter.Error
	)
	switch {
	case errors.As(err, &ve):
		return ve.Param
	case errors.As(err, &te):
		return te.Param
	case errors.As(err, &fe):
		return "filters"
	}
	return ""
}

func validatePage(page, pageSize int) error {
	if err := pagination.Validate(page, pageSize); err != nil {
		if errors.Is(err, ErrInvalidPage) {
			return &ValidationError{Param: "page", Value: fmt.Sprint(page), Err: err}
		}
		return &ValidationError{Param: "page_size", Value: fmt.Sprint(pageSize), Err: err}
	}
	return nil
}
