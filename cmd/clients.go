package main

import (
	"net/http"
	"time"

	"github.com/sells-group/leadscout/internal/config"
	"github.com/sells-group/leadscout/internal/insight"
	"github.com/sells-group/leadscout/internal/research"
	"github.com/sells-group/leadscout/pkg/brandfetch"
	"github.com/sells-group/leadscout/pkg/duckduckgo"
	"github.com/sells-group/leadscout/pkg/groq"
	"github.com/sells-group/leadscout/pkg/newsdata"
	"github.com/sells-group/leadscout/pkg/serper"
)

// newDeps builds provider clients from configuration. A missing key leaves
// that client nil, which the pipeline treats as "source unavailable".
func newDeps(cfg *config.Config) research.Deps {
	deps := research.Deps{
		DuckDuckGo: duckduckgo.NewClient(
			duckduckgo.WithBaseURL(cfg.DuckDuckGo.BaseURL),
			duckduckgo.WithHTTPClient(apiHTTPClient(cfg.DuckDuckGo.TimeoutSecs)),
		),
	}

	if cfg.Brandfetch.Key != "" {
		deps.Brandfetch = brandfetch.NewClient(cfg.Brandfetch.Key,
			brandfetch.WithBaseURL(cfg.Brandfetch.BaseURL),
			brandfetch.WithHTTPClient(apiHTTPClient(cfg.Brandfetch.TimeoutSecs)),
		)
	}
	if cfg.NewsData.Key != "" {
		deps.NewsData = newsdata.NewClient(cfg.NewsData.Key,
			newsdata.WithBaseURL(cfg.NewsData.BaseURL),
			newsdata.WithHTTPClient(apiHTTPClient(cfg.NewsData.TimeoutSecs)),
		)
	}
	if cfg.Serper.Key != "" {
		deps.Serper = serper.NewClient(cfg.Serper.Key,
			serper.WithBaseURL(cfg.Serper.BaseURL),
			serper.WithHTTPClient(apiHTTPClient(cfg.Serper.TimeoutSecs)),
		)
	}
	if cfg.Groq.Key != "" {
		deps.Groq = groq.NewClient(cfg.Groq.Key,
			groq.WithBaseURL(cfg.Groq.BaseURL),
			groq.WithHTTPClient(apiHTTPClient(cfg.Groq.TimeoutSecs)),
		)
	}

	return deps
}

// newSynthesizer wires the insight generator to the researcher's strategic
// context so --strategic runs enrich the prompt.
func newSynthesizer(cfg *config.Config, deps research.Deps, r *research.Researcher) *insight.Synthesizer {
	var fetch insight.ContextFunc
	if deps.Serper != nil {
		fetch = r.StrategicContext
	}
	return insight.NewSynthesizer(deps.Groq, cfg.Groq.Model, fetch)
}

func apiHTTPClient(timeoutSecs int) *http.Client {
	if timeoutSecs <= 0 {
		timeoutSecs = 10
	}
	return &http.Client{
		Timeout: time.Duration(timeoutSecs) * time.Second,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
