package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"sort"
)

// MaxDepth bounds the nesting of combinators.
const MaxDepth = 32

// Parse decodes a JSON filter expression and compiles it. Empty input,
// null and {} compile to MatchAll.
func Parse(data []byte) (Expr, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return MatchAll(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var node any
	if err := dec.Decode(&node); err != nil {
		return Expr{}, newError(ErrMalformedExpression, string(trimmed))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Expr{}, newError(ErrMalformedExpression, string(trimmed))
	}

	return Compile(node)
}

// Compile compiles a decoded expression tree made of map[string]any, []any
// and scalars, as produced by encoding/json.
func Compile(node any) (Expr, error) {
	if node == nil {
		return MatchAll(), nil
	}
	if m, ok := node.(map[string]any); ok && len(m) == 0 {
		return MatchAll(), nil
	}
	return compile(node, 0)
}

func compile(node any, depth int) (Expr, error) {
	if depth > MaxDepth {
		return Expr{}, newError(ErrMalformedExpression, "expression nested too deeply")
	}

	m, ok := node.(map[string]any)
	if !ok || len(m) != 1 {
		return Expr{}, newError(ErrUnsupportedOperator, node)
	}

	for key, payload := range m {
		switch op := Op(key); op {
		case OpEq:
			return compileEq(payload)
		case OpAnd, OpOr:
			items, ok := payload.([]any)
			if !ok {
				return Expr{}, newError(ErrMalformedExpression, m)
			}
			args := make([]Expr, 0, len(items))
			for _, item := range items {
				sub, err := compile(item, depth+1)
				if err != nil {
					return Expr{}, err
				}
				args = append(args, sub)
			}
			return Expr{Op: op, Args: args}, nil
		case OpNot:
			operand, err := notOperand(payload, m)
			if err != nil {
				return Expr{}, err
			}
			sub, err := compile(operand, depth+1)
			if err != nil {
				return Expr{}, err
			}
			return Not(sub), nil
		default:
			return Expr{}, newError(ErrUnsupportedOperator, m)
		}
	}

	// unreachable: len(m) == 1
	return Expr{}, newError(ErrUnsupportedOperator, node)
}

func notOperand(payload any, whole map[string]any) (any, error) {
	switch p := payload.(type) {
	case map[string]any:
		return p, nil
	case []any:
		if len(p) != 1 {
			return nil, newError(ErrInvalidNotArity, whole)
		}
		return p[0], nil
	default:
		return nil, newError(ErrInvalidNotArity, whole)
	}
}

func compileEq(payload any) (Expr, error) {
	m, ok := payload.(map[string]any)
	if !ok || len(m) == 0 {
		return Expr{}, newError(ErrInvalidEqPayload, map[string]any{"eq": payload})
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	leaves := make([]Expr, 0, len(keys))
	for _, k := range keys {
		field, ok := fields[k]
		if !ok {
			return Expr{}, newError(ErrUnknownField, k)
		}
		v, ok := coerce(field.Kind, m[k])
		if !ok {
			return Expr{}, newError(ErrInvalidEqPayload, map[string]any{k: m[k]})
		}
		leaves = append(leaves, Eq(k, v))
	}

	if len(leaves) == 1 {
		return leaves[0], nil
	}
	return And(leaves...), nil
}

func coerce(kind Kind, raw any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		return s, ok
	case KindInt:
		switch v := raw.(type) {
		case json.Number:
			n, err := v.Int64()
			return n, err == nil
		case float64:
			if v != math.Trunc(v) || math.IsInf(v, 0) {
				return nil, false
			}
			return int64(v), true
		case int:
			return int64(v), true
		case int32:
			return int64(v), true
		case int64:
			return v, true
		}
	}
	return nil, false
}
