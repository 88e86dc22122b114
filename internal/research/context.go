package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/serper"
)

// disambiguationTerms steer search queries toward companies when a name
// could equally be a common word.
const disambiguationTerms = " company tech startup business inc"

const resultsPerQuery = 2

// ContextFetcher gathers competitive and market search results used to
// enrich the insight prompt ("strategic context").
type ContextFetcher struct {
	client serper.Client
}

// NewContextFetcher creates a ContextFetcher. A nil client means no
// credential is configured.
func NewContextFetcher(client serper.Client) *ContextFetcher {
	return &ContextFetcher{client: client}
}

// Fetch issues two disambiguated query variants and concatenates their
// organic results, normalized to SearchResult.
func (f *ContextFetcher) Fetch(ctx context.Context, company, industry string) ([]model.SearchResult, Status) {
	if f.client == nil {
		zap.L().Warn("research: serper key not configured, skipping strategic context")
		return nil, StatusNoCredential
	}

	queries := []string{
		company + disambiguationTerms + " competitors market position",
		strings.TrimSpace(company + disambiguationTerms + " growth funding " + industry),
	}

	var all []model.SearchResult
	for _, query := range queries {
		results, err := resilience.DoVal(ctx, retryConfig("serper", "search"), func(ctx context.Context) ([]serper.Result, error) {
			return f.client.Search(ctx, query, resultsPerQuery)
		})
		if err != nil {
			zap.L().Warn("research: strategic search failed",
				zap.String("query", query),
				zap.Error(err),
			)
			continue
		}
		for _, r := range results {
			all = append(all, model.SearchResult{
				Title:   r.Title,
				Content: r.Snippet,
				Source:  r.Link,
			})
		}
	}

	if len(all) == 0 {
		return nil, StatusEmpty
	}
	return all, StatusOK
}
