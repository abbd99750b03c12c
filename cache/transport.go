package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/stashq/stashq-go/collection"
)

// Transport decorates another collection.Transport and serves reads whose
// descriptor carries a remember TTL from the local store. Writes always pass
// through untouched.
type Transport struct {
	inner collection.Transport
	store *Store
	now   func() time.Time
}

// Decorate wraps inner with the given store.
func Decorate(store *Store, inner collection.Transport) *Transport {
	return &Transport{inner: inner, store: store, now: time.Now}
}

// Get serves the read from the store when the descriptor asks to be
// remembered and a fresh entry exists; otherwise it dispatches through the
// inner transport and remembers the result. Store failures fall back to the
// inner transport rather than failing the read.
func (t *Transport) Get(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	if query == nil || query.Remember <= 0 {
		return t.inner.Get(ctx, path, query)
	}

	key, err := requestKey(path, query)
	if err != nil {
		return t.inner.Get(ctx, path, query)
	}

	if payload, ok, err := t.store.Get(key, t.now()); err == nil && ok {
		return json.RawMessage(payload), nil
	}

	payload, err := t.inner.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(query.Remember) * time.Minute
	// Best effort: a failed write only costs the next read a round trip.
	_ = t.store.Put(key, payload, ttl, t.now())
	return payload, nil
}

// Post implements collection.Transport.
func (t *Transport) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.inner.Post(ctx, path, body)
}

// Put implements collection.Transport.
func (t *Transport) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.inner.Put(ctx, path, body)
}

// Remove implements collection.Transport.
func (t *Transport) Remove(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	return t.inner.Remove(ctx, path, query)
}

// requestKey derives a stable cache key from the path and the encoded query.
// The remember hint itself is part of the descriptor and therefore of the
// key; two reads that differ only in TTL do not share an entry.
func requestKey(path string, query *collection.Descriptor) (string, error) {
	values, err := query.QueryValues()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(path + "?" + values.Encode()))
	return hex.EncodeToString(sum[:]), nil
}

var _ collection.Transport = (*Transport)(nil)
