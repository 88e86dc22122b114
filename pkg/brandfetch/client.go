// Package brandfetch provides a client for the Brandfetch brand data API.
package brandfetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.brandfetch.io"

// Client looks up brand data by domain.
type Client interface {
	Brand(ctx context.Context, domain string) (*BrandResponse, error)
}

// BrandResponse is the parsed response from GET /v2/brands/{domain}.
type BrandResponse struct {
	Name  string `json:"name"`
	Logos []Logo `json:"logos"`
}

// Logo is a single logo asset. Brandfetch has served the image location
// under both "url" and "src".
type Logo struct {
	URL string `json:"url"`
	Src string `json:"src"`
}

// LogoURL returns the first logo's location, or empty string.
func (r *BrandResponse) LogoURL() string {
	if r == nil || len(r.Logos) == 0 {
		return ""
	}
	if r.Logos[0].URL != "" {
		return r.Logos[0].URL
	}
	return r.Logos[0].Src
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

// NewClient creates a Brandfetch API client.
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

func (c *httpClient) Brand(ctx context.Context, domain string) (*BrandResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/brands/"+domain, nil)
	if err != nil {
		return nil, eris.Wrap(err, "brandfetch: create request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "brandfetch: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "brandfetch: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("brandfetch: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result BrandResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "brandfetch: unmarshal response")
	}

	return &result, nil
}
