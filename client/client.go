// Package client is the generic JSON CRUD client for the flat-collection
// store. It knows nothing about the domain: one collection, exact-match
// query filters, documents in and out. Every join happens above it, because
// the store has no server-side joins to offer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteError is any non-2xx answer or transport failure from the store,
// carrying which collection and operation it came from. Status is 0 for
// transport-level failures. No retries happen at this layer.
type RemoteError struct {
	Resource string
	Op       string
	Status   int
	Err      error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.Resource, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IsStatus reports whether err is a RemoteError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == status
}

// Client talks to one store base URL. The zero timeout from callers is
// replaced with a bounded default so a hung store call cannot hang its
// caller indefinitely.
type Client struct {
	baseURL string
	http    *http.Client
}

const defaultTimeout = 10 * time.Second

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches all records of a collection, optionally narrowed by
// exact-match query parameters. The store only supports equality filters;
// anything richer is the caller's in-memory problem.
func (c *Client) List(ctx context.Context, resource string, filter url.Values, out any) error {
	u := c.baseURL + "/" + resource
	if len(filter) > 0 {
		u += "?" + filter.Encode()
	}
	return c.do(ctx, http.MethodGet, u, resource, "list", nil, out)
}

// Get fetches one record by id.
func (c *Client) Get(ctx context.Context, resource, id string, out any) error {
	u := c.baseURL + "/" + resource + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodGet, u, resource, "get", nil, out)
}

// Create posts a new record and decodes the stored version (with its
// assigned id) into out.
func (c *Client) Create(ctx context.Context, resource string, body, out any) error {
	u := c.baseURL + "/" + resource
	return c.do(ctx, http.MethodPost, u, resource, "create", body, out)
}

// Update replaces a record by id.
func (c *Client) Update(ctx context.Context, resource, id string, body, out any) error {
	u := c.baseURL + "/" + resource + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodPut, u, resource, "update", body, out)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	u := c.baseURL + "/" + resource + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, u, resource, "delete", nil, nil)
}

func (c *Client) do(ctx context.Context, method, u, resource, op string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Resource: resource, Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &RemoteError{Resource: resource, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Resource: resource, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RemoteError{Resource: resource, Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Resource: resource, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
