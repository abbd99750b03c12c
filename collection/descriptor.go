package collection

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Descriptor is the compiled wire form of a query. Field order and key names
// are the interoperability contract with the service: only keys whose
// underlying state is non-empty appear in the serialized form.
type Descriptor struct {
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
	Remember  int        `json:"remember,omitempty"`
	Query     []Clause   `json:"q,omitempty"`
	Sort      []Order    `json:"s,omitempty"`
	Group     []string   `json:"g,omitempty"`
	PerPage   int        `json:"p,omitempty"`
	First     int        `json:"f,omitempty"`
	Aggregate *Aggregate `json:"aggr,omitempty"`
	Operation *Operation `json:"op,omitempty"`
	Data      any        `json:"data,omitempty"`
	With      []string   `json:"with,omitempty"`
	Select    []string   `json:"select,omitempty"`
	Distinct  bool       `json:"distinct,omitempty"`
}

// BuildQuery compiles the accumulated state into a Descriptor and resets the
// builder. The reset happens synchronously here, before any dispatch, so the
// descriptor reflects builder state exactly as of this call and the builder
// is immediately reusable. This fetch-and-clear behavior is part of the
// public contract.
func (c *Collection) BuildQuery() *Descriptor {
	d := &Descriptor{
		Limit:     c.acc.limit,
		Offset:    c.acc.offset,
		Remember:  c.acc.remember,
		Query:     c.acc.clauses,
		Sort:      c.acc.orders,
		Group:     c.acc.groups,
		PerPage:   c.acc.perPage,
		Aggregate: c.acc.aggregate,
		Operation: c.acc.operation,
		Data:      c.acc.data,
		With:      c.acc.relations,
		Select:    c.acc.selects,
		Distinct:  c.acc.distinct,
	}
	if c.acc.first {
		d.First = 1
	}
	c.acc = accumulator{}
	return d
}

// IsEmpty reports whether the descriptor carries no state at all, i.e. it
// would serialize to "{}".
func (d *Descriptor) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Limit == 0 && d.Offset == 0 && d.Remember == 0 &&
		len(d.Query) == 0 && len(d.Sort) == 0 && len(d.Group) == 0 &&
		d.PerPage == 0 && d.First == 0 &&
		d.Aggregate == nil && d.Operation == nil && d.Data == nil &&
		len(d.With) == 0 && len(d.Select) == 0 && !d.Distinct
}

// QueryValues maps the descriptor onto URL query parameters for read and
// delete dispatches. Scalar keys are rendered plainly; composite keys (q, s,
// g, aggr, op, data, with, select) carry their JSON encoding.
func (d *Descriptor) QueryValues() (url.Values, error) {
	values := url.Values{}
	if d == nil {
		return values, nil
	}

	encoded, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding query descriptor: %w", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &keys); err != nil {
		return nil, fmt.Errorf("encoding query descriptor: %w", err)
	}

	for key, raw := range keys {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values.Set(key, s)
			continue
		}
		values.Set(key, string(raw))
	}
	return values, nil
}
