// Package logging provides slog setup for the client and a transport
// decorator that logs every dispatch.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/stashq/stashq-go/collection"
)

// PrettyJSONHandler is a custom handler that pretty prints JSON in development
type PrettyJSONHandler struct {
	*slog.JSONHandler
	writer io.Writer
}

func (h *PrettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	// Convert the record to a map
	attrs := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	// Add time and level
	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	// Marshal with indentation
	prettyJSON, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}

	// Write to the handler's writer with newline
	_, err = h.writer.Write(append(prettyJSON, '\n'))
	return err
}

func newPrettyJSONHandler() *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(os.Stdout, nil),
		writer:      os.Stdout,
	}
}

var ProdLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

var DevLogger = slog.New(newPrettyJSONHandler())

// Decorate wraps a transport and adds tasteful JSON logging to all
// dispatches. Payloads and errors pass through unmodified.
func Decorate(logger *slog.Logger, next collection.Transport) collection.Transport {
	return &loggedTransport{logger: logger, next: next}
}

type loggedTransport struct {
	logger *slog.Logger
	next   collection.Transport
}

func (t *loggedTransport) Get(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	return t.dispatch(ctx, "READ", path, func(ctx context.Context) (json.RawMessage, error) {
		return t.next.Get(ctx, path, query)
	})
}

func (t *loggedTransport) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.dispatch(ctx, "CREATE", path, func(ctx context.Context) (json.RawMessage, error) {
		return t.next.Post(ctx, path, body)
	})
}

func (t *loggedTransport) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.dispatch(ctx, "UPDATE", path, func(ctx context.Context) (json.RawMessage, error) {
		return t.next.Put(ctx, path, body)
	})
}

func (t *loggedTransport) Remove(ctx context.Context, path string, query *collection.Descriptor) (json.RawMessage, error) {
	return t.dispatch(ctx, "DELETE", path, func(ctx context.Context) (json.RawMessage, error) {
		return t.next.Remove(ctx, path, query)
	})
}

func (t *loggedTransport) dispatch(ctx context.Context, verb, path string, call func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	requestID := uuid.NewString()
	startTime := time.Now()

	t.logger.Info("request_started",
		"verb", verb,
		"path", path,
		"request_id", requestID,
		"timestamp", startTime,
	)

	payload, err := call(ctx)

	attrs := []any{
		"verb", verb,
		"path", path,
		"request_id", requestID,
		"duration_ms", float64(time.Since(startTime).Nanoseconds()) / 1e6,
		"timestamp", time.Now(),
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
		t.logger.Error("request_failed", attrs...)
	} else {
		t.logger.Info("request_completed", attrs...)
	}

	return payload, err
}
