// Package api holds the HTTP clients for the remote help and task endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tableflip.dev/helpdeck/pkg/doc"
)

const defaultTimeout = 30 * time.Second

// HelpResponse is the decoded reply from the help endpoint. Content keeps the
// raw bytes so the document can be decoded with its key order intact.
type HelpResponse struct {
	Content        json.RawMessage `json:"content"`
	Classification map[string]bool `json:"task_classification"`
	Metadata       json.RawMessage `json:"metadata"`
}

// Document decodes the ordered document from the response. Older server
// replies put the sections at the top level instead of under "content"; both
// shapes are handled.
func (r *HelpResponse) Document() (*doc.Document, error) {
	return doc.DecodeBytes(r.Content)
}

// HelpClient fetches simplified help documents for a language and level.
type HelpClient struct {
	BaseURL string
	HTTP    *http.Client
}

type helpRequest struct {
	Lang  string `json:"lang"`
	Level string `json:"level"`
}

// RequestHelp posts {lang, level} and returns the parsed response.
func (c *HelpClient) RequestHelp(ctx context.Context, lang, level string) (*HelpResponse, error) {
	body, err := json.Marshal(helpRequest{Lang: lang, Level: level})
	if err != nil {
		return nil, fmt.Errorf("api: encode help request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/help", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api: build help request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request help: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api: help returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read help response: %w", err)
	}

	out := &HelpResponse{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("api: decode help response: %w", err)
	}
	if len(out.Content) == 0 {
		// Top-level document shape.
		out.Content = raw
	}
	return out, nil
}

func (c *HelpClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: defaultTimeout}
}
