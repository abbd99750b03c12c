package collection

import (
	"context"
	"encoding/json"
)

// Document is one row of a collection as returned by the service.
type Document map[string]any

// Transport dispatches compiled requests to the StashQ service.
// Implementations live outside this package; transport.New provides the
// HTTP one. Failures are reported through the returned error, never by
// panicking.
type Transport interface {
	// Get issues a read for path. query may be nil or empty.
	Get(ctx context.Context, path string, query *Descriptor) (json.RawMessage, error)
	// Post issues a create for path. body is either a raw payload or a
	// compiled *Descriptor.
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	// Put issues an update for path. body is either a raw payload or a
	// compiled *Descriptor.
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	// Remove issues a delete for path. query may be nil.
	Remove(ctx context.Context, path string, query *Descriptor) (json.RawMessage, error)
}

// Client is the entry point of the StashQ client. It is cheap and safe to
// share across goroutines; per-query state lives on the Collection builders
// it hands out.
type Client struct {
	transport Transport
}

// NewClient creates a client dispatching through the given transport.
func NewClient(t Transport) *Client {
	return &Client{transport: t}
}

// Collection returns a query builder for the named collection.
// The name is validated once, here: only lowercase letters, digits,
// underscore and slash are accepted.
func (cl *Client) Collection(name string) (*Collection, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Collection{
		client: cl,
		name:   name,
		path:   "collection/" + name,
	}, nil
}
