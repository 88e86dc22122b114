// Package duckduckgo provides a client for the DuckDuckGo Instant Answer
// API. The API is unauthenticated.
package duckduckgo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.duckduckgo.com"

// Client queries the Instant Answer API.
type Client interface {
	InstantAnswer(ctx context.Context, query string) (*AnswerResponse, error)
}

// AnswerResponse is the parsed Instant Answer payload.
type AnswerResponse struct {
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	Heading       string         `json:"Heading"`
	RelatedTopics []RelatedTopic `json:"RelatedTopics"`
}

// RelatedTopic is one related-topic entry. Topic groups come back without
// Text/FirstURL and decode to zero values, which callers skip.
type RelatedTopic struct {
	Text     string `json:"Text"`
	Result   string `json:"Result"`
	FirstURL string `json:"FirstURL"`
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
	baseURL string
	http    *http.Client
}

// NewClient creates an Instant Answer client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 8 * time.Second,
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

func (c *httpClient) InstantAnswer(ctx context.Context, query string) (*AnswerResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("no_html", "1")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: create request")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "duckduckgo: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("duckduckgo: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result AnswerResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "duckduckgo: unmarshal response")
	}

	return &result, nil
}
