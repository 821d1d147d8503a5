package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Outcome is the result of one Call: exactly one of *TransportError,
// *ProtocolError or *Success.
type Outcome interface {
	outcome()
}

// TransportError means the request never completed at the protocol layer.
type TransportError struct {
	Code string
	Err  error
}

// ProtocolError is a JSON-RPC error object returned by the node.
type ProtocolError struct {
	Code    int
	Message string
	Data    json.RawMessage
}

// Success carries the raw result of a call that returned no error object.
type Success struct {
	Result json.RawMessage
}

func (*TransportError) outcome() {}
func (*ProtocolError) outcome()  {}
func (*Success) outcome()        {}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// Transport error codes.
const (
	CodeConnRefused = "ECONNREFUSED"
	CodeConnReset   = "ECONNRESET"
	CodeNotFound    = "ENOTFOUND"
	CodeTimeout     = "ETIMEDOUT"
	CodeCanceled    = "ECANCELED"
	CodeBadResponse = "EBADRESPONSE"
	CodeUnknown     = "EUNKNOWN"
)

// classify maps a failed round trip to a transport error code.
func classify(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case errors.As(err, &dnsErr):
		if dnsErr.IsTimeout {
			return CodeTimeout
		}
		return CodeNotFound
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeTimeout
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, syscall.ECONNREFUSED):
		return CodeConnRefused
	case errors.Is(err, syscall.ECONNRESET):
		return CodeConnReset
	}
	return CodeUnknown
}
