// Package serper provides a client for the Serper.dev Google search API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://google.serper.dev"

// Client performs organic web searches against the Serper API.
type Client interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}

// Result is a single normalized organic search result.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// searchRequest is the body for POST /search.
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// organicItem tolerates the field aliases Serper has used across plan
// tiers and API revisions.
type organicItem struct {
	Title       string `json:"title"`
	Label       string `json:"label"`
	Snippet     string `json:"snippet"`
	Description string `json:"description"`
	SnippetText string `json:"snippetText"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}

// searchResponse tolerates the alternate top-level keys for the organic
// result list.
type searchResponse struct {
	Organic        []organicItem `json:"organic"`
	Results        []organicItem `json:"results"`
	OrganicResults []organicItem `json:"organic_results"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Serper API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search issues a search and returns normalized organic results. Links
// given as bare domains are promoted to https:// URLs.
func (c *httpClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	body, err := json.Marshal(searchRequest{Q: query, Num: num})
	if err != nil {
		return nil, eris.Wrap(err, "serper: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "serper: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "serper: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "serper: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("serper: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, eris.Wrap(err, "serper: unmarshal response")
	}

	organic := parsed.Organic
	if len(organic) == 0 {
		organic = parsed.Results
	}
	if len(organic) == 0 {
		organic = parsed.OrganicResults
	}

	results := make([]Result, 0, len(organic))
	for _, item := range organic {
		results = append(results, normalize(item))
	}
	return results, nil
}

func normalize(item organicItem) Result {
	title := item.Title
	if title == "" {
		title = item.Label
	}

	snippet := item.Snippet
	if snippet == "" {
		snippet = item.Description
	}
	if snippet == "" {
		snippet = item.SnippetText
	}

	link := item.Link
	if link == "" {
		link = item.URL
	}
	if link == "" {
		link = item.Source
	}
	if link != "" && !strings.HasPrefix(link, "http") {
		link = "https://" + strings.TrimLeft(link, "/")
	}

	return Result{
		Title:   strings.TrimSpace(title),
		Snippet: strings.TrimSpace(snippet),
		Link:    strings.TrimSpace(link),
	}
}
