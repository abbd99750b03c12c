package collection

import (
	"encoding/json"
	"strings"
)

// Clause is one filter condition. Clauses are kept in insertion order;
// combinators apply left to right with no explicit grouping.
type Clause struct {
	Field    string
	Operator string
	Value    any
	Or       bool
}

// MarshalJSON serializes the clause as the wire 4-tuple
// [field, operator, value, "and"|"or"].
func (c Clause) MarshalJSON() ([]byte, error) {
	combinator := "and"
	if c.Or {
		combinator = "or"
	}
	return json.Marshal([]any{c.Field, c.Operator, c.Value, combinator})
}

// Order is one sort key. Orders are cumulative and insertion order is
// significant (multi-key sort).
type Order struct {
	Field     string
	Direction string
}

// MarshalJSON serializes the order as the wire 2-tuple [field, direction].
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{o.Field, o.Direction})
}

// Aggregate is a server-side aggregation request. At most one is active per
// query; a later call overwrites the previous one.
type Aggregate struct {
	Method string `json:"method"`
	Field  string `json:"field"`
}

// Operation is a server-side field operation (increment/decrement).
type Operation struct {
	Method string `json:"method"`
	Field  string `json:"field"`
	Value  any    `json:"value"`
}

// Cond tags an operator/value pair for WhereMap entries.
type Cond struct {
	Op    string
	Value any
}

// normalizeOperator lower-cases an operator before storage. No further
// validation happens client-side; the service owns filter semantics.
func normalizeOperator(op string) string {
	return strings.ToLower(op)
}

// normalizeDirection maps a sort direction onto its wire form: numeric -1
// means "desc", any other numeric or an absent/empty value means "asc", and
// non-empty strings pass through verbatim.
func normalizeDirection(dir any) string {
	switch v := dir.(type) {
	case nil:
		return "asc"
	case int:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case int8:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case int16:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case int32:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case int64:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case float32:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case float64:
		if v == -1 {
			return "desc"
		}
		return "asc"
	case string:
		if v == "" {
			return "asc"
		}
		return v
	default:
		return "asc"
	}
}
