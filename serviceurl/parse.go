// Package serviceurl normalizes StashQ service URLs and joins request paths
// onto them.
package serviceurl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidURL    = errors.New("invalid service URL")
	ErrUnknownScheme = errors.New("unknown URL scheme")
)

// Normalize validates a service base URL and strips any trailing slash.
// Only http and https schemes are accepted.
func Normalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.Fragment = ""
	return u.String(), nil
}

// Join appends path segments to a normalized base URL.
// Segments are joined with single slashes regardless of leading or trailing
// slashes on the inputs.
func Join(base string, parts ...string) string {
	b := strings.TrimRight(base, "/")
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		b = b + "/" + p
	}
	return b
}

// IsLocalhost returns true if the URL points at localhost
// (localhost, 127.0.0.1, or ::1).
func IsLocalhost(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
