// Package client is the Go consumer of the projects API: the same fetch
// boundary the mobile app talks to, with the base URL injected once per
// session instead of rediscovered ad hoc.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"assomap/internal/explore"
)

// ErrStale is returned for a fetch whose response arrived after a newer
// fetch had already been issued. The caller drops the result; the newest
// fetch owns the state.
var ErrStale = errors.New("stale response discarded")

// APIError carries the server's error message for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client fetches project records from the API.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	latest uint64 // sequence of the most recently issued fetch
}

// New creates a client for the given base URL (scheme + host, no /api
// suffix).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchProjects GETs the full project list. Responses overtaken by a newer
// fetch return ErrStale so a slow early response can never overwrite a
// later result. A well-formed but non-array body decodes to an empty slice.
func (c *Client) FetchProjects(ctx context.Context) ([]explore.Record, error) {
	c.mu.Lock()
	c.latest++
	seq := c.latest
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/projets", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}

	c.mu.Lock()
	isLatest := seq == c.latest
	c.mu.Unlock()
	if !isLatest {
		return nil, ErrStale
	}

	return explore.DecodeRecords(body), nil
}

func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "une erreur est survenue sur le serveur"
}
