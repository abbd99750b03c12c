package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stashq/stashq-go/apierror"
)

// Terminal verbs. Every verb that carries query state compiles it through
// BuildQuery before touching the transport, so the builder is already reset
// when the request goes out. Raw-payload writes (Create, Update) bypass the
// compiler and leave the accumulator alone.

func (c *Collection) itemPath(id string) string {
	return c.path + "/" + id
}

// dispatchGet compiles the current state and issues one read on the bare
// collection path.
func (c *Collection) dispatchGet(ctx context.Context) (json.RawMessage, error) {
	return c.client.transport.Get(ctx, c.path, c.BuildQuery())
}

// Create inserts a document. The payload goes out as-is; accumulated query
// state is not consumed.
func (c *Collection) Create(ctx context.Context, data any) (Document, error) {
	raw, err := c.client.transport.Post(ctx, c.path, data)
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// Get reads all rows matching the accumulated query state.
func (c *Collection) Get(ctx context.Context) ([]Document, error) {
	raw, err := c.dispatchGet(ctx)
	if err != nil {
		return nil, err
	}
	return decodeDocuments(raw)
}

// Find reads a single row by id, scoped by the accumulated query state
// (projection, eager-loaded relations).
func (c *Collection) Find(ctx context.Context, id string) (Document, error) {
	query := c.BuildQuery()
	raw, err := c.client.transport.Get(ctx, c.itemPath(id), query)
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// First reads the first row matching the accumulated query state.
func (c *Collection) First(ctx context.Context) (Document, error) {
	c.acc.first = true
	raw, err := c.dispatchGet(ctx)
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// FirstOrCreate returns the first row matching the accumulated query state,
// creating it from data when nothing matches. The compiled descriptor
// (carrying the first flag and the payload) goes out as the request body.
func (c *Collection) FirstOrCreate(ctx context.Context, data any) (Document, error) {
	c.acc.first = true
	c.acc.data = data
	raw, err := c.client.transport.Post(ctx, c.path, c.BuildQuery())
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// aggregate sets the aggregation option and delegates to a read. A later
// aggregation overwrites an earlier one.
func (c *Collection) aggregate(ctx context.Context, method, field string) (float64, error) {
	c.acc.aggregate = &Aggregate{Method: method, Field: field}
	raw, err := c.dispatchGet(ctx)
	if err != nil {
		return 0, err
	}
	return decodeNumber(raw)
}

// Count counts matching rows. The field defaults to "*" when omitted.
func (c *Collection) Count(ctx context.Context, field ...string) (float64, error) {
	f := "*"
	if len(field) > 0 {
		f = field[0]
	}
	return c.aggregate(ctx, "count", f)
}

// Max returns the maximum value of field over matching rows.
func (c *Collection) Max(ctx context.Context, field string) (float64, error) {
	return c.aggregate(ctx, "max", field)
}

// Min returns the minimum value of field over matching rows.
func (c *Collection) Min(ctx context.Context, field string) (float64, error) {
	return c.aggregate(ctx, "min", field)
}

// Avg returns the average value of field over matching rows.
func (c *Collection) Avg(ctx context.Context, field string) (float64, error) {
	return c.aggregate(ctx, "avg", field)
}

// Sum returns the sum of field over matching rows.
func (c *Collection) Sum(ctx context.Context, field string) (float64, error) {
	return c.aggregate(ctx, "sum", field)
}

// Update rewrites a single row by id. The payload goes out as-is;
// accumulated query state is not consumed.
func (c *Collection) Update(ctx context.Context, id string, data any) (Document, error) {
	raw, err := c.client.transport.Put(ctx, c.itemPath(id), data)
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// UpdateAll applies data to every row matching the accumulated query state
// and returns the affected-row count.
func (c *Collection) UpdateAll(ctx context.Context, data any) (int64, error) {
	c.acc.data = data
	raw, err := c.client.transport.Put(ctx, c.path, c.BuildQuery())
	if err != nil {
		return 0, err
	}
	return decodeCount(raw)
}

// operation sets the field-operation option and dispatches an update scoped
// by the accumulated query state. Returns the affected-row count.
func (c *Collection) operation(ctx context.Context, method, field string, value any) (int64, error) {
	c.acc.operation = &Operation{Method: method, Field: field, Value: value}
	raw, err := c.client.transport.Put(ctx, c.path, c.BuildQuery())
	if err != nil {
		return 0, err
	}
	return decodeCount(raw)
}

// Increment adds value to field on every matching row.
func (c *Collection) Increment(ctx context.Context, field string, value any) (int64, error) {
	return c.operation(ctx, "increment", field, value)
}

// Decrement subtracts value from field on every matching row.
func (c *Collection) Decrement(ctx context.Context, field string, value any) (int64, error) {
	return c.operation(ctx, "decrement", field, value)
}

// Remove deletes a single row by id. No query accompanies the request, but
// the accumulated state is cleared regardless.
func (c *Collection) Remove(ctx context.Context, id string) error {
	c.BuildQuery()
	_, err := c.client.transport.Remove(ctx, c.itemPath(id), nil)
	return err
}

// RemoveWhere deletes every row matching the accumulated query state.
// Irreversible.
func (c *Collection) RemoveWhere(ctx context.Context) error {
	_, err := c.client.transport.Remove(ctx, c.path, c.BuildQuery())
	return err
}

// Drop deletes the entire collection, ignoring any accumulated query state.
// Irreversible.
func (c *Collection) Drop(ctx context.Context) error {
	_, err := c.client.transport.Remove(ctx, c.path, nil)
	return err
}

// Each reads all matching rows and applies visitor to each in order.
// A non-nil error from the visitor stops the iteration and is returned.
func (c *Collection) Each(ctx context.Context, visitor func(Document) error) error {
	docs, err := c.Get(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := visitor(doc); err != nil {
			return err
		}
	}
	return nil
}

// Subscription is a handle to the realtime change feed of a collection.
// The feed is reserved in the wire protocol but not available yet.
type Subscription struct{}

// Channel subscribes to the collection's realtime change feed.
// It always fails with a not-implemented error, regardless of builder state.
func (c *Collection) Channel() (*Subscription, error) {
	return nil, apierror.NotImplemented("channel")
}

func decodeDocument(raw json.RawMessage) (Document, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

func decodeDocuments(raw json.RawMessage) ([]Document, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decoding document list: %w", err)
	}
	return docs, nil
}

func decodeNumber(raw json.RawMessage) (float64, error) {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("decoding aggregation result: %w", err)
	}
	return n, nil
}

func decodeCount(raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("decoding affected-row count: %w", err)
	}
	return n, nil
}
