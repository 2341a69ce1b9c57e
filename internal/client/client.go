// Package client is the thin HTTP data layer a UI sits on top of: one
// request per operation against the users REST API, no retries, no
// caching, no timeout policy of its own. Deadlines belong to the
// caller's context and the injected http.Client.
//
// Failures — transport errors and non-2xx responses alike — come back
// as a single wrapped error labeled with the operation ("fetch users:
// ...", "add user: ..."), ready for a UI to render as-is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/aanand-mishra/users-api/internal/utils/response"
)

// Client calls the users REST API rooted at a base URL.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for the API at baseURL (e.g.
// "http://localhost:3000"). Pass nil to use http.DefaultClient; pass
// your own *http.Client to control timeouts and transport.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: httpClient,
	}
}

// FetchUsers returns the full collection.
func (c *Client) FetchUsers(ctx context.Context) ([]types.User, error) {
	var all []types.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, http.StatusOK, &all); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return all, nil
}

// AddUser creates a record and returns it, server-assigned id included.
func (c *Client) AddUser(ctx context.Context, payload types.NewUser) (types.User, error) {
	var created types.User
	if err := c.do(ctx, http.MethodPost, "/api/users", payload, http.StatusCreated, &created); err != nil {
		return types.User{}, fmt.Errorf("add user: %w", err)
	}
	return created, nil
}

// GetUser fetches a single record by id.
func (c *Client) GetUser(ctx context.Context, id string) (types.User, error) {
	var u types.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, http.StatusOK, &u); err != nil {
		return types.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUser applies a partial update to the record with the given id.
func (c *Client) UpdateUser(ctx context.Context, id string, patch types.Patch) error {
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id, patch, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("edit user: %w", err)
	}
	return nil
}

// DeleteUser removes the record with the given id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// do issues one request and decodes the response into out (when out is
// non-nil). A status other than want is an error carrying the server's
// error detail when the body holds the standard envelope.
func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("server returned %s: %s", resp.Status, errorDetail(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// errorDetail pulls the human-readable reason out of an error envelope,
// falling back to the raw body for anything else.
func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}

	var envelope response.Response
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	return strings.TrimSpace(string(data))
}
