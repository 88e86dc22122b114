package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/duckduckgo"
)

// SummaryFetcher looks up a short company summary from the knowledge-graph
// API, filtering out generic dictionary definitions that match common-word
// company names.
type SummaryFetcher struct {
	client       duckduckgo.Client
	genericNames map[string]bool
	indicators   []string
}

// NewSummaryFetcher creates a SummaryFetcher. genericNames lists company
// names that collide with common words and need query disambiguation;
// indicators are the lowercase keywords that mark a text as being about a
// business rather than a concept.
func NewSummaryFetcher(client duckduckgo.Client, genericNames, indicators []string) *SummaryFetcher {
	generic := make(map[string]bool, len(genericNames))
	for _, n := range genericNames {
		generic[strings.ToLower(n)] = true
	}
	return &SummaryFetcher{client: client, genericNames: generic, indicators: indicators}
}

// Fetch returns a short summary for the company, or empty. A summary with
// no business-indicator keyword that runs past 20 words is treated as a
// dictionary definition and discarded; related topics are then scanned for
// the first business-flavored entry.
func (f *SummaryFetcher) Fetch(ctx context.Context, company string) (string, Status) {
	if f.client == nil {
		return "", StatusNoCredential
	}

	query := company
	if f.genericNames[strings.ToLower(company)] {
		query = company + " company tech startup business"
	}

	resp, err := resilience.DoVal(ctx, retryConfig("duckduckgo", "instant_answer"), func(ctx context.Context) (*duckduckgo.AnswerResponse, error) {
		return f.client.InstantAnswer(ctx, query)
	})
	if err != nil {
		zap.L().Warn("research: summary lookup failed",
			zap.String("company", company),
			zap.Error(err),
		)
		return "", StatusError
	}

	summary := resp.AbstractText
	if summary == "" {
		summary = resp.Heading
	}

	if summary != "" && !f.hasIndicator(summary) && len(strings.Fields(summary)) > 20 {
		// Long text with no business vocabulary reads like a concept
		// definition, not a company.
		summary = ""
	}

	if summary == "" {
		for _, topic := range resp.RelatedTopics {
			text := topic.Text
			if text == "" {
				text = topic.Result
			}
			if text != "" && f.hasIndicator(text) {
				summary = text
				break
			}
		}
	}

	if summary == "" {
		return "", StatusEmpty
	}
	return summary, StatusOK
}

func (f *SummaryFetcher) hasIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range f.indicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
