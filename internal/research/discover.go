package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/internal/urlutil"
	"github.com/sells-group/leadscout/pkg/duckduckgo"
)

// commonTLDs mark a search-result URL as plausibly being a company site.
var commonTLDs = []string{".com", ".io", ".co", ".ai"}

// discoverWebsite tries to find an official website for a company that was
// submitted without one. Three attempts, cheapest first: an "official
// website" knowledge lookup, the name itself as a bare domain, and finally
// the strategic-context search results.
func (r *Researcher) discoverWebsite(ctx context.Context, company string) string {
	if site := r.discoverViaInstantAnswer(ctx, company); site != "" {
		return site
	}

	if strings.Contains(company, ".") && len(strings.Split(company, ".")) >= 2 {
		candidate := strings.TrimSpace(company)
		if urlutil.IsValidURL(candidate) {
			return candidate
		}
		if !strings.HasPrefix(candidate, "http") {
			candidate = "https://" + candidate
		}
		if urlutil.IsValidURL(candidate) {
			return candidate
		}
	}

	results, status := r.contexts.Fetch(ctx, company, "")
	if status != StatusOK {
		return ""
	}
	lowerName := strings.ToLower(company)
	for _, item := range results {
		source := item.Source
		if source == "" {
			continue
		}
		if strings.Contains(strings.ToLower(source), lowerName) || hasCommonTLD(source) {
			return source
		}
	}

	return ""
}

func (r *Researcher) discoverViaInstantAnswer(ctx context.Context, company string) string {
	if r.ddg == nil {
		return ""
	}

	query := company + " official website"
	if r.summary.genericNames[strings.ToLower(company)] {
		query = company + " company official website tech startup"
	}

	resp, err := resilience.DoVal(ctx, retryConfig("duckduckgo", "discover_website"), func(ctx context.Context) (*duckduckgo.AnswerResponse, error) {
		return r.ddg.InstantAnswer(ctx, query)
	})
	if err != nil {
		zap.L().Debug("research: website discovery lookup failed",
			zap.String("company", company),
			zap.Error(err),
		)
		return ""
	}

	if len(resp.RelatedTopics) > 0 && resp.RelatedTopics[0].FirstURL != "" {
		return resp.RelatedTopics[0].FirstURL
	}
	return resp.AbstractURL
}

func hasCommonTLD(source string) bool {
	for _, tld := range commonTLDs {
		if strings.Contains(source, tld) {
			return true
		}
	}
	return false
}
