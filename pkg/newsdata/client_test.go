package newsdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNews(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    string
		wantTitles []string
	}{
		{
			name:   "results_schema",
			status: http.StatusOK,
			body: `{"results": [
				{"title": "Stripe raises round", "link": "https://news.example.com/1"},
				{"title": "Stripe launches product", "link": "https://news.example.com/2"}
			]}`,
			wantTitles: []string{"Stripe raises round", "Stripe launches product"},
		},
		{
			name:       "articles_schema_with_aliases",
			status:     http.StatusOK,
			body:       `{"articles": [{"headline": "Acme in the news", "url": "https://news.example.com/3"}]}`,
			wantTitles: []string{"Acme in the news"},
		},
		{
			name:       "empty",
			status:     http.StatusOK,
			body:       `{}`,
			wantTitles: nil,
		},
		{
			name:    "rate_limited",
			status:  http.StatusTooManyRequests,
			body:    `{"status":"error"}`,
			wantErr: "unexpected status 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/1/news", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "test-key", q.Get("apikey"))
				assert.Equal(t, "Stripe", q.Get("q"))
				assert.Equal(t, "en", q.Get("language"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))
			articles, err := client.News(context.Background(), "Stripe")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			var titles []string
			for _, a := range articles {
				titles = append(titles, a.BestTitle())
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestArticleAliases(t *testing.T) {
	a := Article{Headline: "H", URL: "u"}
	assert.Equal(t, "H", a.BestTitle())
	assert.Equal(t, "u", a.BestLink())

	b := Article{Title: "T", Headline: "H", Link: "l", URL: "u"}
	assert.Equal(t, "T", b.BestTitle())
	assert.Equal(t, "l", b.BestLink())
}
