// Package cleartext is a Go client for the ClearText REST API.
//
// Every call returns a Result whose Outcome tells success, a missing answer,
// a rejected request and a transient failure apart, so callers can decide
// whether to retry.
package cleartext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/cleartext/internal/models"
)

// DefaultTimeout matches the server's write timeout.
const DefaultTimeout = 300 * time.Second

// Outcome classifies the result of a call.
type Outcome string

const (
	// OutcomeOK means the server answered with the expected payload.
	OutcomeOK Outcome = "ok"
	// OutcomeNotFound means the server answered without the expected field, or with 404.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeInvalid means the server rejected the request (4xx). Retrying will not help.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeFailed is a transport error, timeout, 5xx or undecodable response.
	OutcomeFailed Outcome = "failed"
)

// Result carries the value of a call together with its outcome.
type Result[T any] struct {
	Value      T
	Outcome    Outcome
	StatusCode int
	Err        error
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeOK
}

// Retryable reports whether the failure is transient.
func (r Result[T]) Retryable() bool {
	return r.Outcome == OutcomeFailed
}

// ServerError is an error reported by the server in its JSON error body.
type ServerError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return e.Message
}

// Client calls a ClearText server.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the overall per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client targeting serverURL, e.g. http://localhost:8000.
func NewClient(serverURL string, opts ...ClientOption) *Client {
	c := &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Simplify asks the server to rewrite text in plain language.
func (c *Client) Simplify(ctx context.Context, text string) Result[string] {
	var resp struct {
		Simplified *string `json:"simplified"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/simplify", models.TextInput{Text: text}, &resp)
	if err != nil {
		return failure[string](status, err)
	}
	if resp.Simplified == nil {
		return Result[string]{Outcome: OutcomeNotFound, StatusCode: status}
	}
	return Result[string]{Value: *resp.Simplified, Outcome: OutcomeOK, StatusCode: status}
}

// AskTutor asks the server to explain a sentence or concept.
func (c *Client) AskTutor(ctx context.Context, text string) Result[string] {
	var resp struct {
		Explanation *string `json:"explanation"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/ask-tutor", models.TextInput{Text: text}, &resp)
	if err != nil {
		return failure[string](status, err)
	}
	if resp.Explanation == nil {
		return Result[string]{Outcome: OutcomeNotFound, StatusCode: status}
	}
	return Result[string]{Value: *resp.Explanation, Outcome: OutcomeOK, StatusCode: status}
}

// Glossary asks the server for the glossary of text. An empty glossary is a
// successful result.
func (c *Client) Glossary(ctx context.Context, text string) Result[map[string]string] {
	var resp struct {
		Glossary map[string]string `json:"glossary"`
	}
	status, err := c.doJSON(ctx, http.MethodPost, "/glossary", models.TextInput{Text: text}, &resp)
	if err != nil {
		return failure[map[string]string](status, err)
	}
	if resp.Glossary == nil {
		return Result[map[string]string]{Value: map[string]string{}, Outcome: OutcomeNotFound, StatusCode: status}
	}
	return Result[map[string]string]{Value: resp.Glossary, Outcome: OutcomeOK, StatusCode: status}
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) Result[string] {
	var resp struct {
		Status string `json:"status"`
	}
	status, err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &resp)
	if err != nil {
		return failure[string](status, err)
	}
	return Result[string]{Value: resp.Status, Outcome: OutcomeOK, StatusCode: status}
}

// Version returns the server's version information.
func (c *Client) Version(ctx context.Context) Result[map[string]string] {
	var resp map[string]string
	status, err := c.doJSON(ctx, http.MethodGet, "/api/version", nil, &resp)
	if err != nil {
		return failure[map[string]string](status, err)
	}
	return Result[map[string]string]{Value: resp, Outcome: OutcomeOK, StatusCode: status}
}

// failure classifies an error from doJSON by status code. Errors without a
// 4xx status (transport, 5xx, undecodable 2xx) are transient.
func failure[T any](status int, err error) Result[T] {
	outcome := OutcomeFailed
	switch {
	case status == http.StatusNotFound:
		outcome = OutcomeNotFound
	case status >= 400 && status < 500 && status != http.StatusTooManyRequests && status != http.StatusRequestTimeout:
		outcome = OutcomeInvalid
	}
	return Result[T]{Outcome: outcome, StatusCode: status, Err: err}
}

// doJSON performs an HTTP request with an optional JSON body and decodes a
// 2xx response into out. The returned status is 0 when no response arrived.
func (c *Client) doJSON(ctx context.Context, method, path string, data, out interface{}) (int, error) {
	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, bodyReader)
	if err != nil {
		return 0, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		se := &ServerError{StatusCode: resp.StatusCode}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			se.Message = errResp.Error
			se.Code = errResp.Code
		}
		return resp.StatusCode, se
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.StatusCode, nil
}
