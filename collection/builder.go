package collection

import "sort"

// Collection is the query builder for one named collection. Modifier methods
// mutate the accumulated query state and return the same builder for
// chaining; terminal verbs (verbs.go) compile that state into a Descriptor
// and dispatch it.
type Collection struct {
	client *Client
	name   string
	path   string
	acc    accumulator
}

// accumulator holds the per-builder query state collected between terminal
// calls. Compiling moves it into a Descriptor and zeroes it.
type accumulator struct {
	clauses   []Clause
	orders    []Order
	groups    []string
	selects   []string
	relations []string
	distinct  bool
	first     bool
	aggregate *Aggregate
	operation *Operation
	data      any
	limit     int
	offset    int
	remember  int
	perPage   int
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Path returns the service path for the collection.
func (c *Collection) Path() string { return c.path }

func (c *Collection) addClause(field, op string, value any, or bool) *Collection {
	c.acc.clauses = append(c.acc.clauses, Clause{
		Field:    field,
		Operator: normalizeOperator(op),
		Value:    value,
		Or:       or,
	})
	return c
}

// Where adds an equality clause combined with AND.
func (c *Collection) Where(field string, value any) *Collection {
	return c.addClause(field, "=", value, false)
}

// WhereOp adds a clause with an explicit operator combined with AND.
// The operator is lower-cased and otherwise stored as given.
func (c *Collection) WhereOp(field, op string, value any) *Collection {
	return c.addClause(field, op, value, false)
}

// WhereMap adds one clause per map entry, combined with AND. A plain value
// means equality; a Cond value carries an explicit operator. Entries are
// applied in sorted field order so compiles are deterministic.
func (c *Collection) WhereMap(fields map[string]any) *Collection {
	return c.addMap(fields, false)
}

// OrWhere adds an equality clause combined with OR.
func (c *Collection) OrWhere(field string, value any) *Collection {
	return c.addClause(field, "=", value, true)
}

// OrWhereOp adds a clause with an explicit operator combined with OR.
func (c *Collection) OrWhereOp(field, op string, value any) *Collection {
	return c.addClause(field, op, value, true)
}

// OrWhereMap is WhereMap with every added clause combined with OR.
func (c *Collection) OrWhereMap(fields map[string]any) *Collection {
	return c.addMap(fields, true)
}

func (c *Collection) addMap(fields map[string]any, or bool) *Collection {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, field := range keys {
		switch v := fields[field].(type) {
		case Cond:
			c.addClause(field, v.Op, v.Value, or)
		default:
			c.addClause(field, "=", v, or)
		}
	}
	return c
}

// Join sets the relations to eager-load, including dotted nested paths such
// as "author.contacts". Each call replaces the previous list.
func (c *Collection) Join(relations ...string) *Collection {
	c.acc.relations = append([]string(nil), relations...)
	return c
}

// Select sets the projection field list. Each call replaces the previous
// list.
func (c *Collection) Select(fields ...string) *Collection {
	c.acc.selects = append([]string(nil), fields...)
	return c
}

// Distinct requests distinct rows. There is no per-field granularity.
func (c *Collection) Distinct() *Collection {
	c.acc.distinct = true
	return c
}

// Group sets the group-by field list. Each call replaces the previous list.
func (c *Collection) Group(fields ...string) *Collection {
	c.acc.groups = append([]string(nil), fields...)
	return c
}

// Sort appends one sort key. Calls are cumulative, in order. The optional
// direction follows the service convention: numeric -1 means descending,
// any other numeric or an omitted direction means ascending, and a
// non-empty string is stored verbatim.
func (c *Collection) Sort(field string, direction ...any) *Collection {
	var dir any
	if len(direction) > 0 {
		dir = direction[0]
	}
	c.acc.orders = append(c.acc.orders, Order{
		Field:     field,
		Direction: normalizeDirection(dir),
	})
	return c
}

// Limit sets the maximum number of rows to return. Overwrites any previous
// limit; zero means unset.
func (c *Collection) Limit(n int) *Collection {
	c.acc.limit = n
	return c
}

// Offset sets the number of rows to skip. Overwrites any previous offset;
// zero means unset.
func (c *Collection) Offset(n int) *Collection {
	c.acc.offset = n
	return c
}

// Remember attaches a cache TTL hint in minutes. The hint is forwarded
// opaquely; key derivation and storage policy live with the transport (see
// the cache package).
func (c *Collection) Remember(minutes int) *Collection {
	c.acc.remember = minutes
	return c
}

// Reset clears all accumulated query state. Terminal verbs call this
// implicitly through BuildQuery; it is exported for manual clearing.
func (c *Collection) Reset() *Collection {
	c.acc = accumulator{}
	return c
}
