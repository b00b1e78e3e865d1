package draftsmith

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const airtableBaseURL = "https://api.airtable.com/v0"

// Fields is one record's field set, with non-text fields dropped. The four
// curated tables only hold single-line text (plus the Keywords link column).
type Fields map[string]string

// AirtableClient talks to the Airtable REST API for one base.
type AirtableClient struct {
	apiKey     string
	baseID     string
	baseURL    string
	httpClient *http.Client
}

// AirtableOption configures the Airtable client.
type AirtableOption func(*AirtableClient)

// WithAirtableBaseURL overrides the API endpoint (tests point it at a fake).
func WithAirtableBaseURL(u string) AirtableOption {
	return func(c *AirtableClient) { c.baseURL = u }
}

// NewAirtableClient creates a client for the given base.
func NewAirtableClient(apiKey, baseID string, opts ...AirtableOption) *AirtableClient {
	c := &AirtableClient{
		apiKey:  apiKey,
		baseID:  baseID,
		baseURL: airtableBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type airtableListResponse struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset,omitempty"`
}

type airtableCreateRequest struct {
	Fields map[string]string `json:"fields"`
}

// ListRecords fetches every record of a table in API iteration order,
// following pagination offsets until exhausted.
func (c *AirtableClient) ListRecords(ctx context.Context, table string) ([]Fields, error) {
	var out []Fields
	offset := ""
	for {
		page, err := c.listPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			out = append(out, stringFields(rec.Fields))
		}
		if page.Offset == "" {
			return out, nil
		}
		offset = page.Offset
	}
}

func (c *AirtableClient) listPage(ctx context.Context, table, offset string) (*airtableListResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
	if offset != "" {
		endpoint += "?offset=" + url.QueryEscape(offset)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list %s: read response: %w", table, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: status %d: %s", table, resp.StatusCode, truncate(string(body), 200))
	}

	var page airtableListResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("list %s: unmarshal response: %w", table, err)
	}
	return &page, nil
}

// CreateRecord appends one record to a table.
func (c *AirtableClient) CreateRecord(ctx context.Context, table string, fields map[string]string) error {
	payload, err := json.Marshal(airtableCreateRequest{Fields: fields})
	if err != nil {
		return fmt.Errorf("create %s: marshal request: %w", table, err)
	}
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("create %s: status %d: %s", table, resp.StatusCode, truncate(string(body), 200))
	}
	return nil
}

func stringFields(in map[string]any) Fields {
	out := make(Fields, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
