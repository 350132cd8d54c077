// Package gateway is the HTTP client for the remote persistence API.
// Failures are normalized to single human-readable messages keyed off the
// response status, so callers can surface them directly.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sales-voucher/internal/entry"
)

// APIError is a non-2xx response from the persistence API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch {
	case e.Status == http.StatusBadRequest:
		return "Invalid data. Please check your entries and try again."
	case e.Status == http.StatusNotFound:
		return "API endpoint not found. Please contact support."
	case e.Status >= http.StatusInternalServerError:
		return "Server error. Please try again in a few minutes."
	default:
		return fmt.Sprintf("Request failed with status %d.", e.Status)
	}
}

// Client talks to the persistence API at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. The timeout mirrors the transport the form ran on
// originally; there is no retry.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchItems loads the full item catalog from GET /item.
func (c *Client) FetchItems(ctx context.Context) ([]entry.Item, error) {
	var items []entry.Item
	if err := c.do(ctx, http.MethodGet, "/item", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem adds one catalog item via POST /item.
func (c *Client) CreateItem(ctx context.Context, item entry.Item) error {
	return c.do(ctx, http.MethodPost, "/item", item, nil)
}

// CreateVoucher persists a normalized voucher via POST /header/multiple.
func (c *Client) CreateVoucher(ctx context.Context, p entry.Payload) error {
	return c.do(ctx, http.MethodPost, "/header/multiple", p, nil)
}

// NextVoucherNumber asks the store for the next free voucher number.
func (c *Client) NextVoucherNumber(ctx context.Context) (int, error) {
	var out struct {
		VrNo int `json:"vr_no"`
	}
	if err := c.do(ctx, http.MethodGet, "/header/next-number", nil, &out); err != nil {
		return 0, err
	}
	return out.VrNo, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("Unable to reach the server. Please check your connection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the optional {message} body out of an error
// response. An empty return falls back to the status-based guidance.
func errorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
