package apierror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"invalid name", InvalidName("Posts"), IsInvalidName},
		{"not implemented", NotImplemented("channel"), IsNotImplemented},
		{"transport", Transport(404, "not found"), IsTransport},
		{"transport wrap", TransportWrap("dialing service", errors.New("refused")), IsTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("predicate rejected %v", tt.err)
			}
		})
	}
}

func TestPredicates_DistinguishKinds(t *testing.T) {
	err := Transport(500, "boom")
	if IsInvalidName(err) || IsNotImplemented(err) {
		t.Errorf("transport error matched the wrong kind: %v", err)
	}
	if IsTransport(InvalidName("x y")) {
		t.Error("invalid-name error should not read as transport")
	}
	if IsTransport(errors.New("plain")) {
		t.Error("plain error should not read as transport")
	}
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get failed: %w", Transport(401, "token expired"))
	if !IsTransport(wrapped) {
		t.Errorf("wrapped transport error not recognized: %v", wrapped)
	}
}

func TestTransport_CarriesStatus(t *testing.T) {
	err := Transport(404, "no such collection")
	if err.Status() != 404 {
		t.Errorf("status = %d, want 404", err.Status())
	}
	if err.Message() != "no such collection" {
		t.Errorf("message = %q", err.Message())
	}
}

func TestTransportWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := TransportWrap("dialing service", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if err.Status() != 0 {
		t.Errorf("network failure status = %d, want 0", err.Status())
	}
	if got := err.Error(); got != "dialing service: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestInvalidName_MentionsTheName(t *testing.T) {
	err := InvalidName("Bad Name")
	if !strings.Contains(err.Error(), `"Bad Name"`) {
		t.Errorf("message should quote the offending name: %q", err.Error())
	}
}

func TestNotImplemented_MentionsTheCapability(t *testing.T) {
	err := NotImplemented("channel")
	if !strings.Contains(err.Error(), "channel") {
		t.Errorf("message should name the capability: %q", err.Error())
	}
}
