package filter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnsupportedOperator = errors.New("unsupported filter operator")
	ErrInvalidEqPayload    = errors.New("invalid eq payload")
	ErrUnknownField        = errors.New("unknown filter field")
	ErrInvalidNotArity     = errors.New("not takes exactly one operand")
	ErrMalformedExpression = errors.New("malformed filter expression")
)

// Error reports a rejected filter together with the fragment that caused it.
type Error struct {
	Err      error
	Fragment any
}

func newError(err error, fragment any) *Error {
	return &Error{Err: err, Fragment: fragment}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, describe(e.Fragment))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func describe(fragment any) string {
	if s, ok := fragment.(string); ok {
		return s
	}
	b, err := json.Marshal(fragment)
	if err != nil {
		return fmt.Sprintf("%v", fragment)
	}
	return string(b)
}
