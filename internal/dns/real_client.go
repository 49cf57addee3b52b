package dns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultEndpoint is the base URL of the provider's DNS API.
const DefaultEndpoint = "https://dns.hetzner.com/api/v1"

// RealClient implements Client against the provider's DNS REST API.
type RealClient struct {
	endpoint string
	token    string
	http     *retryablehttp.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint overrides the API base URL (useful for testing).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom retrying HTTP client.
func WithHTTPClient(hc *retryablehttp.Client) ClientOption {
	return func(c *RealClient) {
		c.http = hc
	}
}

// NewRealClient creates a new RealClient authenticated with the given token.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	hc := retryablehttp.NewClient()
	hc.RetryMax = 3
	hc.Logger = nil
	c := &RealClient{
		endpoint: DefaultEndpoint,
		token:    token,
		http:     hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*RealClient)(nil)

// GetZone returns the zone with the given name.
func (c *RealClient) GetZone(ctx context.Context, name string) (*Zone, error) {
	var result struct {
		Zones []*Zone `json:"zones"`
	}
	path := "/zones?name=" + url.QueryEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	for _, z := range result.Zones {
		if z.Name == name {
			return z, nil
		}
	}
	return nil, fmt.Errorf("dns zone not found: %s", name)
}

// ListRecords returns all records in the zone.
func (c *RealClient) ListRecords(ctx context.Context, zoneID string) ([]*Record, error) {
	var result struct {
		Records []*Record `json:"records"`
	}
	path := "/records?zone_id=" + url.QueryEscape(zoneID)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Records, nil
}

// CreateRecord creates a new record in the record's zone.
func (c *RealClient) CreateRecord(ctx context.Context, record Record) (*Record, error) {
	var result struct {
		Record *Record `json:"record"`
	}
	if err := c.do(ctx, http.MethodPost, "/records", record, &result); err != nil {
		return nil, err
	}
	return result.Record, nil
}

// UpdateRecord replaces the record with the given ID in place.
func (c *RealClient) UpdateRecord(ctx context.Context, record Record) (*Record, error) {
	if record.ID == "" {
		return nil, fmt.Errorf("cannot update record without an id")
	}
	var result struct {
		Record *Record `json:"record"`
	}
	if err := c.do(ctx, http.MethodPut, "/records/"+record.ID, record, &result); err != nil {
		return nil, err
	}
	return result.Record, nil
}

// DeleteRecord deletes the record with the given ID.
func (c *RealClient) DeleteRecord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/records/"+id, nil, nil)
}

func (c *RealClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode dns request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build dns request: %w", err)
	}
	req.Header.Set("Auth-API-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dns api request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("dns api %s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode dns response: %w", err)
	}
	return nil
}
