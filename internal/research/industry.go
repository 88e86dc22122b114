package research

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/groq"
)

// IndustryUnknown is returned when classification is impossible.
const IndustryUnknown = "Unknown"

// IndustryClassifier labels a company's industry with a single short
// low-cost model call.
type IndustryClassifier struct {
	client groq.Client
	model  string
}

// NewIndustryClassifier creates an IndustryClassifier. A nil client means
// no credential is configured and every call returns "Unknown".
func NewIndustryClassifier(client groq.Client, model string) *IndustryClassifier {
	return &IndustryClassifier{client: client, model: model}
}

// Infer returns a short industry phrase for the company, or "Unknown" on
// any failure. Sampling is deterministic (temperature 0).
func (c *IndustryClassifier) Infer(ctx context.Context, company, summary string) string {
	if c.client == nil {
		zap.L().Warn("research: groq key not configured, skipping industry classification")
		return IndustryUnknown
	}

	if summary == "" {
		summary = "No summary available."
	}
	prompt := fmt.Sprintf(
		"Classify the industry for the company named '%s'. Summary: %s\nReturn a short phrase like 'FinTech', 'AI Consulting', 'Healthcare SaaS'.",
		company, summary,
	)

	resp, err := resilience.DoVal(ctx, retryConfig("groq", "infer_industry"), func(ctx context.Context) (*groq.ChatCompletionResponse, error) {
		return c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
			Model:       c.model,
			Messages:    []groq.Message{{Role: "user", Content: prompt}},
			MaxTokens:   30,
			Temperature: 0,
		})
	})
	if err != nil {
		zap.L().Warn("research: industry classification failed",
			zap.String("company", company),
			zap.Error(err),
		)
		return IndustryUnknown
	}

	industry := strings.TrimSpace(resp.Content())
	if industry == "" {
		return IndustryUnknown
	}
	return industry
}
