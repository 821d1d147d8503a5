// Package jsonrpc is a single-call JSON-RPC 2.0 client for the Graph node admin API.
// Each Call produces exactly one Outcome; nothing is retried.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/prevostc/graph-tooling/pkg/ui"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 10 << 20

// CodeBadRequest is reported when the request itself cannot be encoded.
const CodeBadRequest = "EBADREQUEST"

// Request is a JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// Response is a JSON-RPC 2.0 response envelope. Result stays nil when the
// member is absent and holds "null" when the node sent a null result.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	} `json:"error"`
}

// Client is bound to one node endpoint. Headers set on it apply to every
// request it sends, so a client is not shared between commands.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	header     http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient returns a client for endpoint. Only http and https endpoints are supported.
func NewClient(endpoint *url.URL, opts ...Option) (*Client, error) {
	if endpoint == nil {
		return nil, fmt.Errorf("no endpoint given")
	}
	switch endpoint.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("invalid endpoint URL scheme %q: only http and https are supported", endpoint.Scheme)
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		header:     http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() *url.URL {
	return c.endpoint
}

// SetHeader sets a header on all subsequent requests.
func (c *Client) SetHeader(key, value string) {
	c.header.Set(key, value)
}

// SetBearer authorizes subsequent requests with token.
func (c *Client) SetBearer(token string) {
	c.SetHeader("Authorization", "Bearer "+token)
}

// Call sends one request and blocks until its outcome is known.
// A JSON-RPC error object in the body is reported as *ProtocolError even when
// the HTTP status is not 2xx, since the node did process the request.
func (c *Client) Call(ctx context.Context, method string, params interface{}) Outcome {
	body, err := json.Marshal(Request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return &TransportError{Code: CodeBadRequest, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return &TransportError{Code: CodeBadRequest, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	ui.Log.Debug("sending JSON-RPC request", ui.Log.Args("method", method, "url", c.endpoint.String(), "authorized", req.Header.Get("Authorization") != ""))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Code: classify(err), Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &TransportError{Code: classify(err), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	ui.Log.Debug("received JSON-RPC response", ui.Log.Args("status", resp.StatusCode, "bytes", len(raw)))

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var rpcResp Response
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		if !ok {
			return &TransportError{Code: fmt.Sprintf("HTTP %d", resp.StatusCode), Err: fmt.Errorf("unexpected response: %s", http.StatusText(resp.StatusCode))}
		}
		return &TransportError{Code: CodeBadResponse, Err: fmt.Errorf("failed to parse response JSON: %w", err)}
	}

	if rpcResp.Error != nil {
		return &ProtocolError{
			Code:    rpcResp.Error.Code,
			Message: rpcResp.Error.Message,
			Data:    rpcResp.Error.Data,
		}
	}

	if !ok {
		return &TransportError{Code: fmt.Sprintf("HTTP %d", resp.StatusCode), Err: fmt.Errorf("unexpected response: %s", http.StatusText(resp.StatusCode))}
	}

	if rpcResp.Result == nil {
		return &TransportError{Code: CodeBadResponse, Err: fmt.Errorf("response has neither result nor error")}
	}

	return &Success{Result: rpcResp.Result}
}
