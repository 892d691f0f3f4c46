// SPDX-License-Identifier: AGPL-3.0-only
package webclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Client is the HTTP transport the post helper talks through.
type Client struct {
	httpClient http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: http.Client{
			Timeout: timeout,
		},
	}
}

// TransportError is what a failed GET surfaces: the numeric status and the
// status text, nothing else. Callers branch on it explicitly.
type TransportError struct {
	Status     int
	StatusText string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %d %s", e.Status, e.StatusText)
}

// BuildURI joins base, action and params into a request URI. An "id" param
// rides as a path segment; everything else becomes a percent-encoded query
// string. params is left untouched.
func BuildURI(base, action string, params map[string]string) string {
	uri := base + "/" + action + "/"

	rest := make(map[string]string, len(params))
	for k, v := range params {
		rest[k] = v
	}

	if id, ok := rest["id"]; ok {
		uri += id
		delete(rest, "id")
	}

	if len(rest) == 0 {
		return uri
	}

	keys := make([]string, 0, len(rest))
	for k := range rest {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(rest[k]))
	}
	return uri + "?" + strings.Join(pairs, "&")
}

// Get issues a GET and decodes the JSON body into out. Only a 2xx answer
// counts as success; anything else becomes a *TransportError. (The previous
// client treated every status from 200 up as success, which swallowed 4xx
// and 5xx answers whole.)
func (c *Client) Get(ctx context.Context, uri string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Status: resp.StatusCode, StatusText: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %v: %w", uri, err)
	}
	return nil
}
