// Package provider holds clients for external services.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// CricAPIClient fetches live professional cricket scores from CricAPI, shown
// alongside the club's own scoreboard. Disabled when no API key is set.
type CricAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewCricAPIClient creates a CricAPI client.
func NewCricAPIClient(baseURL, apiKey string, logger *slog.Logger) *CricAPIClient {
	return &CricAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *CricAPIClient) Enabled() bool {
	return c.apiKey != ""
}

// LiveScore is one entry from the current-matches feed.
type LiveScore struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Venue   string   `json:"venue"`
	Date    string   `json:"date"`
	Teams   []string `json:"teams"`
	Started bool     `json:"matchStarted"`
	Ended   bool     `json:"matchEnded"`
}

type currentMatchesResponse struct {
	Status string      `json:"status"`
	Data   []LiveScore `json:"data"`
}

// CurrentMatches returns the live professional matches feed.
func (c *CricAPIClient) CurrentMatches(ctx context.Context) ([]LiveScore, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("cricapi not configured")
	}

	endpoint := fmt.Sprintf("%s/currentMatches?apikey=%s&offset=0", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cricapi request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read cricapi response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cricapi returned %d", resp.StatusCode)
	}

	var parsed currentMatchesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode cricapi response: %w", err)
	}
	if parsed.Status != "success" {
		return nil, fmt.Errorf("cricapi status %q", parsed.Status)
	}

	c.logger.Debug("cricapi current matches fetched", "count", len(parsed.Data))
	return parsed.Data, nil
}
