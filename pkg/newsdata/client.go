// Package newsdata provides a client for the NewsData.io news search API.
package newsdata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://newsdata.io"

// Client searches English-language news articles.
type Client interface {
	News(ctx context.Context, query string) ([]Article, error)
}

// Article is a single article. Title and link tolerate the field aliases
// seen across NewsData response revisions.
type Article struct {
	Title    string `json:"title"`
	Headline string `json:"headline"`
	Link     string `json:"link"`
	URL      string `json:"url"`
}

// BestTitle returns the article title, falling back to the headline.
func (a Article) BestTitle() string {
	if a.Title != "" {
		return a.Title
	}
	return a.Headline
}

// BestLink returns the article link, falling back to the url field.
func (a Article) BestLink() string {
	if a.Link != "" {
		return a.Link
	}
	return a.URL
}

// newsResponse tolerates both "results" and "articles" list keys.
type newsResponse struct {
	Results  []Article `json:"results"`
	Articles []Article `json:"articles"`
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

// NewClient creates a NewsData API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
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

func (c *httpClient) News(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", query)
	params.Set("language", "en")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/1/news?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "newsdata: create request")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "newsdata: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "newsdata: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("newsdata: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed newsResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, eris.Wrap(err, "newsdata: unmarshal response")
	}

	if len(parsed.Results) > 0 {
		return parsed.Results, nil
	}
	return parsed.Articles, nil
}
