package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadscout/internal/config"
	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/pkg/brandfetch"
	"github.com/sells-group/leadscout/pkg/duckduckgo"
	"github.com/sells-group/leadscout/pkg/groq"
	"github.com/sells-group/leadscout/pkg/newsdata"
	"github.com/sells-group/leadscout/pkg/serper"
)

func testConfig() *config.Config {
	return &config.Config{
		Groq: config.GroqConfig{Model: "test-model"},
		Research: config.ResearchConfig{
			NewsLimit:          5,
			ScrapeTimeoutSecs:  5,
			GenericNames:       []string{"vector", "zen", "pulse"},
			BusinessIndicators: testIndicators,
		},
	}
}

func TestResearchAllSources(t *testing.T) {
	site := serveHTML(t, `<html><head><title>Stripe</title>
		<meta name="description" content="Payments infrastructure for the internet.">
		</head><body><main>Millions of businesses use Stripe to accept payments and manage revenue online.</main></body></html>`)

	brandSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Stripe", "logos": [{"url": "https://cdn.example.com/stripe.png"}]}`))
	}))
	t.Cleanup(brandSrv.Close)

	ddgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"AbstractText": "Stripe is an Irish-American financial services company."}`))
	}))
	t.Cleanup(ddgSrv.Close)

	newsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"results": []map[string]string{
				{"title": "Stripe expands in Europe", "link": "https://example.com/news"},
			},
		}))
	}))
	t.Cleanup(newsSrv.Close)

	groqSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "FinTech"}}]}`))
	}))
	t.Cleanup(groqSrv.Close)

	r := New(testConfig(), Deps{
		DuckDuckGo: duckduckgo.NewClient(duckduckgo.WithBaseURL(ddgSrv.URL)),
		Brandfetch: brandfetch.NewClient("key", brandfetch.WithBaseURL(brandSrv.URL)),
		NewsData:   newsdata.NewClient("key", newsdata.WithBaseURL(newsSrv.URL)),
		Groq:       groq.NewClient("key", groq.WithBaseURL(groqSrv.URL)),
	})

	lead := r.Research(context.Background(), "Stripe", site.URL)

	assert.Equal(t, "Stripe", lead.CompanyName)
	assert.Equal(t, "Stripe", lead.CanonicalName)
	assert.Equal(t, site.URL, lead.Website)
	assert.Equal(t, "https://cdn.example.com/stripe.png", lead.Logo)
	assert.Contains(t, lead.Summary, "financial services company")
	require.Len(t, lead.News, 1)
	assert.Equal(t, "Stripe expands in Europe", lead.News[0].Title)
	assert.Equal(t, "FinTech", lead.Industry)
	assert.NotEmpty(t, lead.RunID)

	// Provenance is recorded in fixed stage order regardless of which
	// fetches ran concurrently.
	assert.Equal(t, []string{
		model.SourceBrandfetch,
		model.SourceWebsiteContent,
		model.SourceDuckDuckGo,
		model.SourceNewsData,
		model.SourceIndustryAI,
	}, lead.SourcesUsed)
}

func TestResearchWebsiteSummaryFallback(t *testing.T) {
	site := serveHTML(t, `<html><head><title>Obscure Co</title></head>
		<body><main>Obscure Co builds bespoke tooling for a very small set of industrial clients worldwide.</main></body></html>`)

	// Knowledge lookup finds nothing.
	ddgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(ddgSrv.Close)

	r := New(testConfig(), Deps{
		DuckDuckGo: duckduckgo.NewClient(duckduckgo.WithBaseURL(ddgSrv.URL)),
	})

	lead := r.Research(context.Background(), "Obscure Co", site.URL)

	assert.Contains(t, lead.Summary, "Obscure Co builds bespoke tooling")
	assert.Contains(t, lead.SourcesUsed, model.SourceWebsiteContent)
	assert.Contains(t, lead.SourcesUsed, model.SourceWebsiteSummary)
	assert.NotContains(t, lead.SourcesUsed, model.SourceDuckDuckGo)
	// Summary came from scraped content, so industry still runs but has no
	// model behind it.
	assert.Equal(t, IndustryUnknown, lead.Industry)
}

func TestResearchNoCredentialsNoWebsite(t *testing.T) {
	r := New(testConfig(), Deps{})

	lead := r.Research(context.Background(), "Ghost Startup", "")

	assert.Equal(t, "Ghost Startup", lead.CompanyName)
	assert.Equal(t, "Ghost Startup", lead.CanonicalName)
	assert.Empty(t, lead.Website)
	assert.Empty(t, lead.Summary)
	assert.Empty(t, lead.News)
	assert.Empty(t, lead.Industry)
	assert.Empty(t, lead.SourcesUsed)
}

func TestResearchCanonicalNameSharpensDownstream(t *testing.T) {
	site := serveHTML(t, `<html><head><title>ACME</title></head><body><main>We make everything, from anvils to rockets, for discerning customers.</main></body></html>`)

	brandSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Acme Corporation"}`))
	}))
	t.Cleanup(brandSrv.Close)

	var newsQueries []string
	newsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newsQueries = append(newsQueries, r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"status": "success", "results": []}`))
	}))
	t.Cleanup(newsSrv.Close)

	r := New(testConfig(), Deps{
		Brandfetch: brandfetch.NewClient("key", brandfetch.WithBaseURL(brandSrv.URL)),
		NewsData:   newsdata.NewClient("key", newsdata.WithBaseURL(newsSrv.URL)),
	})

	lead := r.Research(context.Background(), "acme", site.URL)

	assert.Equal(t, "Acme Corporation", lead.CanonicalName)
	require.NotEmpty(t, newsQueries)
	assert.Equal(t, "Acme Corporation", newsQueries[0])
}

func TestResearchDiscoversWebsiteFromInstantAnswer(t *testing.T) {
	site := serveHTML(t, `<html><head><title>Found</title></head><body><main>This page was discovered through the knowledge lookup rather than supplied.</main></body></html>`)

	ddgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "Hidden Co official website" {
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"RelatedTopics": []map[string]string{{"FirstURL": site.URL, "Text": "Hidden Co"}},
			}))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(ddgSrv.Close)

	r := New(testConfig(), Deps{
		DuckDuckGo: duckduckgo.NewClient(duckduckgo.WithBaseURL(ddgSrv.URL)),
	})

	lead := r.Research(context.Background(), "Hidden Co", "")

	assert.Equal(t, site.URL, lead.Website)
	assert.Contains(t, lead.SourcesUsed, model.SourceWebsiteContent)
}

func TestDiscoverWebsiteBareDomainName(t *testing.T) {
	r := New(testConfig(), Deps{})

	got := r.discoverWebsite(context.Background(), "acme.com")
	assert.Equal(t, "https://acme.com", got)
}

func TestDiscoverWebsiteFromStrategicContext(t *testing.T) {
	ddgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(ddgSrv.Close)

	serperSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic": [{"title": "Widgetry homepage", "snippet": "s", "link": "https://widgetry.io/about"}]}`))
	}))
	t.Cleanup(serperSrv.Close)

	r := New(testConfig(), Deps{
		DuckDuckGo: duckduckgo.NewClient(duckduckgo.WithBaseURL(ddgSrv.URL)),
		Serper:     serper.NewClient("key", serper.WithBaseURL(serperSrv.URL)),
	})

	got := r.discoverWebsite(context.Background(), "Widgetry")
	assert.Equal(t, "https://widgetry.io/about", got)
}

func TestDiscoverWebsiteNothingFound(t *testing.T) {
	r := New(testConfig(), Deps{})
	assert.Empty(t, r.discoverWebsite(context.Background(), "No Such Company"))
}

func TestStrategicContext(t *testing.T) {
	serperSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic": [{"title": "Market report", "snippet": "growing fast", "link": "https://example.com/report"}]}`))
	}))
	t.Cleanup(serperSrv.Close)

	r := New(testConfig(), Deps{
		Serper: serper.NewClient("key", serper.WithBaseURL(serperSrv.URL)),
	})

	results := r.StrategicContext(context.Background(), "Acme", "SaaS")
	require.Len(t, results, 2) // one hit per query variant
	assert.Equal(t, "Market report", results[0].Title)

	empty := New(testConfig(), Deps{})
	assert.Nil(t, empty.StrategicContext(context.Background(), "Acme", "SaaS"))
}
