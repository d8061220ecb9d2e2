// Package upstream is the HTTP client for the blood-donation platform API.
// Every screen fetches through it; nothing in this repository is
// authoritative for the data it returns.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// APIError carries the upstream rejection. Screens render Message verbatim
// and never branch on StatusCode.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client wraps the platform REST API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds a client for the given base URL. No timeout is set on
// purpose: the client imposes no deadline beyond the transport's own.
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// do performs a JSON API call. body (when non-nil) is JSON-encoded with a
// matching content type. token (when non-empty) is attached as a bearer
// credential. The response body is decoded leniently: an unparsable or
// empty body yields a nil payload rather than an error, so success paths
// with empty bodies proceed.
func (c *Client) do(ctx context.Context, method, path string, body any, token string) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, path, reader, contentType, token)
}

// doRaw is the multipart-friendly variant: the body reader is passed
// through unmodified and no content type is forced, so file-upload forms
// keep their own boundary header.
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType, token string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Warn("upstream call failed")
		}
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	var payload json.RawMessage
	if json.Valid(raw) && len(bytes.TrimSpace(raw)) > 0 {
		payload = json.RawMessage(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(payload, resp.StatusCode)}
	}
	return payload, nil
}

// errorMessage extracts the server-provided message field, falling back to
// a status-coded generic.
func errorMessage(payload json.RawMessage, status int) string {
	if len(payload) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}

// decode unmarshals a payload into dest, tolerating empty payloads.
func decode(payload json.RawMessage, dest any) error {
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, dest)
}
