// Package filter compiles caller-supplied boolean filter trees into an AST
// that can be evaluated in memory or translated into a storage query.
package filter

import "view-analytics-service/internal/analytics/core/domain"

type Op string

const (
	OpEq  Op = "eq"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpNot Op = "not"
)

// Expr is a compiled filter node. Eq nodes carry Field and a typed Value
// (int64 or string); And/Or carry any number of Args; Not carries exactly one.
type Expr struct {
	Op    Op     `json:"op"`
	Field string `json:"field,omitempty"`
	Value any    `json:"value"`
	Args  []Expr `json:"args,omitempty"`
}

// Eq matches events whose field equals value. Values for integer fields
// are stored as int64 whatever integer type the caller passes.
func Eq(field string, value any) Expr {
	if f, ok := fields[field]; ok {
		if v, ok := coerce(f.Kind, value); ok {
			value = v
		}
	}
	return Expr{Op: OpEq, Field: field, Value: value}
}

func And(args ...Expr) Expr {
	return Expr{Op: OpAnd, Args: args}
}

func Or(args ...Expr) Expr {
	return Expr{Op: OpOr, Args: args}
}

func Not(arg Expr) Expr {
	return Expr{Op: OpNot, Args: []Expr{arg}}
}

// MatchAll is the empty conjunction.
func MatchAll() Expr {
	return And()
}

// IsMatchAll reports whether e is an empty conjunction.
func (e Expr) IsMatchAll() bool {
	return e.Op == OpAnd && len(e.Args) == 0
}

// Match evaluates e against a single event.
func (e Expr) Match(ev domain.Event) bool {
	switch e.Op {
	case OpEq:
		f, ok := fields[e.Field]
		if !ok {
			return false
		}
		return f.value(ev) == e.Value
	case OpAnd:
		acc := true
		for _, arg := range e.Args {
			acc = acc && arg.Match(ev)
			if !acc {
				break
			}
		}
		return acc
	case OpOr:
		acc := false
		for _, arg := range e.Args {
			acc = acc || arg.Match(ev)
			if acc {
				break
			}
		}
		return acc
	case OpNot:
		if len(e.Args) != 1 {
			return false
		}
		return !e.Args[0].Match(ev)
	default:
		return false
	}
}

// Folder maps each node kind of an expression onto T. Children are folded
// left to right before their parent, so Eq callbacks observe leaves in
// document order.
type Folder[T any] struct {
	Eq  func(field Field, value any) (T, error)
	And func(args []T) T
	Or  func(args []T) T
	Not func(arg T) T
}

// Fold walks e bottom-up with f.
func Fold[T any](e Expr, f Folder[T]) (T, error) {
	var zero T
	switch e.Op {
	case OpEq:
		field, ok := fields[e.Field]
		if !ok {
			return zero, newError(ErrUnknownField, e.Field)
		}
		return f.Eq(field, e.Value)
	case OpAnd, OpOr:
		args := make([]T, 0, len(e.Args))
		for _, arg := range e.Args {
			v, err := Fold(arg, f)
			if err != nil {
				return zero, err
			}
			args = append(args, v)
		}
		if e.Op == OpAnd {
			return f.And(args), nil
		}
		return f.Or(args), nil
	case OpNot:
		if len(e.Args) != 1 {
			return zero, newError(ErrInvalidNotArity, e)
		}
		v, err := Fold(e.Args[0], f)
		if err != nil {
			return zero, err
		}
		return f.Not(v), nil
	default:
		return zero, newError(ErrUnsupportedOperator, string(e.Op))
	}
}
