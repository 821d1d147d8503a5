// Package validate provides reusable input validation functions for CLI arguments
// and configuration values. All validators return a *ValidationError describing the
// violation or nil if the input is acceptable. Validation always runs before any
// network activity.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// MaxDeployKeyLength is the longest deploy key a Graph node accepts.
const MaxDeployKeyLength = 200

// subgraphNameRe matches "name" or "account/name" subgraph names.
var subgraphNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*(/[a-zA-Z0-9][a-zA-Z0-9_-]*)?$`)

// ValidationError reports bad user input. Reason echoes the violated constraint.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DeployKey validates that a deploy key does not exceed MaxDeployKeyLength characters.
func DeployKey(key string) error {
	if len([]rune(key)) > MaxDeployKeyLength {
		return &ValidationError{Reason: "deploy key too long"}
	}
	return nil
}

// NodeURL parses s as an absolute URL. Schemes are not restricted here; the
// JSON-RPC client rejects the ones it cannot speak.
func NodeURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid node url", Err: err}
	}
	if u.Scheme == "" {
		return nil, &ValidationError{Reason: "invalid node url", Err: fmt.Errorf("missing protocol scheme in %q", s)}
	}
	if u.Host == "" && u.Opaque == "" {
		return nil, &ValidationError{Reason: "invalid node url", Err: fmt.Errorf("missing host in %q", s)}
	}
	return u, nil
}

// SubgraphName validates a subgraph name of the form "name" or "account/name".
func SubgraphName(s string) error {
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Reason: "subgraph name must not be empty"}
	}
	if !subgraphNameRe.MatchString(s) {
		return &ValidationError{Reason: "invalid subgraph name", Err: fmt.Errorf("%q may only contain letters, digits, '-', '_' and at most one '/'", s)}
	}
	return nil
}
