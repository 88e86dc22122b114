package research

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/newsdata"
)

// NewsFetcher searches recent news by company name and, when it adds
// signal, by domain, merging the two result sets.
type NewsFetcher struct {
	client       newsdata.Client
	genericNames map[string]bool
}

// NewNewsFetcher creates a NewsFetcher. A nil client means no credential
// is configured.
func NewNewsFetcher(client newsdata.Client, genericNames []string) *NewsFetcher {
	generic := make(map[string]bool, len(genericNames))
	for _, n := range genericNames {
		generic[strings.ToLower(n)] = true
	}
	return &NewsFetcher{client: client, genericNames: generic}
}

// Fetch returns up to limit news items. When a domain is supplied and is
// not already part of the name, both are queried and the merged results
// are deduplicated by lowercased title, preserving first-seen order.
func (f *NewsFetcher) Fetch(ctx context.Context, company, domain string, limit int) ([]model.NewsItem, Status) {
	if f.client == nil {
		zap.L().Warn("research: newsdata key not configured, skipping news lookup")
		return nil, StatusNoCredential
	}

	var items []model.NewsItem
	if company != "" {
		items = append(items, f.query(ctx, f.disambiguate(company), limit)...)
	}

	if domain != "" && !strings.Contains(company, domain) {
		clean := strings.TrimPrefix(domain, "https://")
		clean = strings.TrimPrefix(clean, "http://")
		clean = strings.TrimPrefix(clean, "www.")
		clean = strings.SplitN(clean, "/", 2)[0]
		items = append(items, f.query(ctx, clean, limit)...)
	}

	deduped := dedupByTitle(items, limit)
	if len(deduped) == 0 {
		return nil, StatusEmpty
	}
	return deduped, StatusOK
}

func (f *NewsFetcher) query(ctx context.Context, query string, limit int) []model.NewsItem {
	articles, err := resilience.DoVal(ctx, retryConfig("newsdata", "news"), func(ctx context.Context) ([]newsdata.Article, error) {
		return f.client.News(ctx, query)
	})
	if err != nil {
		zap.L().Warn("research: news lookup failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}

	var items []model.NewsItem
	for _, a := range articles {
		if len(items) >= limit {
			break
		}
		title := a.BestTitle()
		if title == "" {
			continue
		}
		items = append(items, model.NewsItem{Title: title, Link: a.BestLink()})
	}
	return items
}

// disambiguate rewrites queries for company names that collide with
// common words, so results skew toward business coverage.
func (f *NewsFetcher) disambiguate(company string) string {
	if !f.genericNames[strings.ToLower(company)] {
		return company
	}
	return fmt.Sprintf("%[1]q company OR %[1]q startup OR %[1]q tech", company)
}

// dedupByTitle removes items whose lowercased trimmed title was already
// seen, preserving first-seen order, truncated to limit.
func dedupByTitle(items []model.NewsItem, limit int) []model.NewsItem {
	seen := make(map[string]bool, len(items))
	var out []model.NewsItem
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
