package research

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadscout/internal/config"
	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/internal/urlutil"
	"github.com/sells-group/leadscout/pkg/brandfetch"
	"github.com/sells-group/leadscout/pkg/duckduckgo"
	"github.com/sells-group/leadscout/pkg/groq"
	"github.com/sells-group/leadscout/pkg/newsdata"
	"github.com/sells-group/leadscout/pkg/serper"
)

// Deps are the provider clients the researcher draws on. A nil client
// means the credential is absent; the corresponding source degrades to an
// empty result instead of failing the run.
type Deps struct {
	DuckDuckGo duckduckgo.Client
	Brandfetch brandfetch.Client
	NewsData   newsdata.Client
	Serper     serper.Client
	Groq       groq.Client
}

// Researcher runs the fixed-order aggregation pipeline over the five
// source adapters.
type Researcher struct {
	ddg       duckduckgo.Client
	website   *WebsiteFetcher
	brand     *BrandFetcher
	summary   *SummaryFetcher
	news      *NewsFetcher
	contexts  *ContextFetcher
	industry  *IndustryClassifier
	newsLimit int
}

// New creates a Researcher from configuration and provider clients.
func New(cfg *config.Config, deps Deps) *Researcher {
	newsLimit := cfg.Research.NewsLimit
	if newsLimit <= 0 {
		newsLimit = 5
	}
	scrapeTimeout := time.Duration(cfg.Research.ScrapeTimeoutSecs) * time.Second
	if scrapeTimeout <= 0 {
		scrapeTimeout = 10 * time.Second
	}

	return &Researcher{
		ddg:       deps.DuckDuckGo,
		website:   NewWebsiteFetcher(scrapeTimeout),
		brand:     NewBrandFetcher(deps.Brandfetch),
		summary:   NewSummaryFetcher(deps.DuckDuckGo, cfg.Research.GenericNames, cfg.Research.BusinessIndicators),
		news:      NewNewsFetcher(deps.NewsData, cfg.Research.GenericNames),
		contexts:  NewContextFetcher(deps.Serper),
		industry:  NewIndustryClassifier(deps.Groq, cfg.Groq.Model),
		newsLimit: newsLimit,
	}
}

// StrategicContext exposes the strategic-context adapter for insight
// enrichment and the search surface. Returns an empty slice when the
// source is unavailable.
func (r *Researcher) StrategicContext(ctx context.Context, company, industry string) []model.SearchResult {
	results, status := r.contexts.Fetch(ctx, company, industry)
	if status != StatusOK {
		return nil
	}
	return results
}

// Research aggregates all available sources into a Lead. It never returns
// an error: a failed or unconfigured source shortens SourcesUsed, nothing
// more. Brand lookup runs before summary and news so a corrected canonical
// name sharpens the downstream queries; industry classification runs last
// because it feeds on the summary.
func (r *Researcher) Research(ctx context.Context, company, website string) *model.Lead {
	lead := model.NewLead(company, website)
	lead.RunID = uuid.NewString()

	log := zap.L().With(
		zap.String("company", company),
		zap.String("run_id", lead.RunID),
	)
	log.Info("research: starting", zap.String("website", website))

	if website == "" {
		if found := r.discoverWebsite(ctx, company); found != "" {
			website = found
			lead.Website = found
			log.Info("research: discovered website", zap.String("website", found))
		}
	}

	var domain string
	if website != "" {
		domain = urlutil.ExtractDomain(website)
	}

	// Brand lookup and website scrape are independent of each other;
	// everything after depends on their results. SourcesUsed is appended
	// in fixed stage order after both return.
	var (
		brand         Brand
		brandStatus   = StatusEmpty
		content       string
		contentStatus = StatusEmpty
	)
	g, gCtx := errgroup.WithContext(ctx)
	if domain != "" {
		g.Go(func() error {
			brand, brandStatus = r.brand.Fetch(gCtx, domain)
			return nil
		})
	}
	if website != "" {
		g.Go(func() error {
			content, contentStatus = r.website.Fetch(gCtx, website)
			return nil
		})
	}
	_ = g.Wait()

	if brandStatus == StatusOK {
		lead.Logo = brand.Logo
		if brand.Name != "" {
			lead.CanonicalName = brand.Name
		}
		lead.AddSource(model.SourceBrandfetch)
	}
	if contentStatus == StatusOK && content != "" {
		lead.AddSource(model.SourceWebsiteContent)
	}

	if summary, status := r.summary.Fetch(ctx, lead.CanonicalName); status == StatusOK {
		lead.Summary = summary
		lead.AddSource(model.SourceDuckDuckGo)
	} else if content != "" && contentStatus == StatusOK {
		lead.Summary = content
		lead.AddSource(model.SourceWebsiteSummary)
	}

	if news, status := r.news.Fetch(ctx, lead.CanonicalName, domain, r.newsLimit); status == StatusOK {
		lead.News = news
		lead.AddSource(model.SourceNewsData)
	}

	if lead.Summary != "" {
		lead.Industry = r.industry.Infer(ctx, lead.CanonicalName, lead.Summary)
		lead.AddSource(model.SourceIndustryAI)
	}

	log.Info("research: complete",
		zap.Strings("sources_used", lead.SourcesUsed),
		zap.Int("news_items", len(lead.News)),
		zap.String("industry", lead.Industry),
	)
	return lead
}

// retryConfig is the standard per-call retry policy: 2 attempts, linear
// backoff, logged retries. Provider calls retry on any failure, not just
// transient ones; a permanent error costs one extra call and then degrades.
func retryConfig(service, operation string) resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.ShouldRetry = func(error) bool { return true }
	cfg.OnRetry = resilience.RetryLogger(service, operation)
	return cfg
}
