// Package apierror provides the error types returned by the StashQ client.
//
// There are three kinds of error:
//   - construction errors (an invalid collection name), raised synchronously
//     when a builder is created;
//   - not-implemented errors, raised synchronously for capabilities the
//     service does not ship yet;
//   - transport errors, reported by the transport after a dispatch and passed
//     through unmodified.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInvalidName marks a collection name that fails validation.
	KindInvalidName Kind = iota
	// KindNotImplemented marks an unavailable capability.
	KindNotImplemented
	// KindTransport marks a failure reported by the transport.
	KindTransport
)

// Error implements the error interface for all client errors.
type Error struct {
	kind    Kind
	status  int
	message string
	cause   error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

// Status returns the HTTP status code for transport errors, or 0 when the
// failure never produced a response (network errors, synchronous errors).
func (e *Error) Status() int { return e.status }

// Message returns the error message without the cause.
func (e *Error) Message() string { return e.message }

// Unwrap returns the underlying cause for errors.As/errors.Is support.
func (e *Error) Unwrap() error { return e.cause }

// InvalidName creates a construction error for a malformed collection name.
func InvalidName(name string) *Error {
	return &Error{
		kind:    KindInvalidName,
		message: fmt.Sprintf("invalid collection name %q: only lowercase letters, digits, underscore and slash are allowed", name),
	}
}

// NotImplemented creates an error for a capability the client does not support.
func NotImplemented(capability string) *Error {
	return &Error{
		kind:    KindNotImplemented,
		message: fmt.Sprintf("%s is not implemented", capability),
	}
}

// Transport creates a transport error carrying the HTTP status reported by
// the service.
func Transport(status int, message string) *Error {
	return &Error{kind: KindTransport, status: status, message: message}
}

// TransportWrap wraps a network-level failure that never produced a response.
func TransportWrap(message string, cause error) *Error {
	return &Error{kind: KindTransport, message: message, cause: cause}
}

// isKind reports whether err is (or wraps) an *Error of the given kind.
func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == k
}

// IsInvalidName reports whether err is a collection-name construction error.
func IsInvalidName(err error) bool { return isKind(err, KindInvalidName) }

// IsNotImplemented reports whether err is a not-implemented error.
func IsNotImplemented(err error) bool { return isKind(err, KindNotImplemented) }

// IsTransport reports whether err is a transport error.
func IsTransport(err error) bool { return isKind(err, KindTransport) }
