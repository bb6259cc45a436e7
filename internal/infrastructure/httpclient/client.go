package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const maxErrorBody = 512

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client sends JSON requests relative to a base URL with fixed headers.
type Client struct {
	baseURL string
	http    *http.Client
	headers map[string]string
}

func New(baseURL string, timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		headers: headers,
	}
}

// HTTPClient exposes the underlying client so tests can swap its transport.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

func (c *Client) URL(path string) string {
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// DoJSON encodes body (when not nil), sends it and decodes a 2xx response into out (when not nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		reader = bytes.NewReader(b)
	}

	target := c.URL(path)
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, target)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(payload) > maxErrorBody {
			payload = payload[:maxErrorBody]
		}
		return &StatusError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(payload)}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(payload, out), "decode response")
}
