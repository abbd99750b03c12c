// Package transport provides the HTTP implementation of the
// collection.Transport interface.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stashq/stashq-go/apierror"
	"github.com/stashq/stashq-go/collection"
	"github.com/stashq/stashq-go/serviceurl"
)

// HTTP dispatches requests to a StashQ service over HTTP. It is safe for
// concurrent use.
type HTTP struct {
	base   string
	client *http.Client
	token  string
	now    func() time.Time
	nextID func() string
}

// Option configures an HTTP transport.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(h *HTTP) { h.token = token }
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) { h.client.Timeout = d }
}

// New creates an HTTP transport for the given service base URL.
func New(baseURL string, opts ...Option) (*HTTP, error) {
	base, err := serviceurl.Normalize(baseURL)
	if err != nil {
		return nil, err
	}
	h := &HTTP{
		base:   base,
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
		nextID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Get implements collection.Transport.
func (h *HTTP) Get(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	return h.do(ctx, http.MethodGet, path, query, nil)
}

// Post implements collection.Transport.
func (h *HTTP) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return h.do(ctx, http.MethodPost, path, nil, body)
}

// Put implements collection.Transport.
func (h *HTTP) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return h.do(ctx, http.MethodPut, path, nil, body)
}

// Remove implements collection.Transport.
func (h *HTTP) Remove(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	return h.do(ctx, http.MethodDelete, path, query, nil)
}

// errorBody is the JSON error envelope the service uses for non-2xx replies.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *HTTP) do(ctx context.Context, method, path string, query *collection.Descriptor, body any) (json.RawMessage, error) {
	if h.token != "" && tokenExpired(h.token, h.now()) {
		return nil, apierror.Transport(http.StatusUnauthorized, "bearer token is expired")
	}

	target := serviceurl.Join(h.base, path)
	if query != nil && !query.IsEmpty() {
		values, err := query.QueryValues()
		if err != nil {
			return nil, apierror.TransportWrap("encoding query", err)
		}
		target = target + "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apierror.TransportWrap("encoding request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, apierror.TransportWrap("building request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", h.nextID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apierror.TransportWrap(method+" "+path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.TransportWrap("reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		if json.Unmarshal(payload, &e) == nil && e.Message != "" {
			return nil, apierror.Transport(resp.StatusCode, e.Message)
		}
		return nil, apierror.Transport(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return json.RawMessage(payload), nil
}

var _ collection.Transport = (*HTTP)(nil)
