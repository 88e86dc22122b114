// Package insight turns an aggregated lead record into a narrative
// strategic assessment via a single chat-completion call.
package insight

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/groq"
)

// Fixed user-facing strings. Truncation gets its own message so the UI can
// distinguish "the model ran out of room" from "the call failed".
const (
	MsgFailed    = "Analysis generation failed. Please check the company website and try again."
	MsgTruncated = "Analysis was truncated. Please try again with the 'Strategic Research' option disabled, or provide a company website for more focused analysis."
)

const (
	insightMaxTokens   = 1200
	insightTemperature = 0.3
	truncationWordMin  = 300
	maxNewsInContext   = 3
	maxStrategicItems  = 2
)

// ContextFunc supplies strategic-context search results for prompt
// enrichment. Implementations return an empty slice when the source is
// unavailable.
type ContextFunc func(ctx context.Context, company, industry string) []model.SearchResult

// Request carries the researched fields an insight is generated from.
type Request struct {
	CompanyName             string
	CanonicalName           string
	Summary                 string
	Industry                string
	Website                 string
	News                    []model.NewsItem
	SourcesUsed             []string
	IncludeStrategicContext bool
}

// Synthesizer generates strategic assessments.
type Synthesizer struct {
	client       groq.Client
	model        string
	fetchContext ContextFunc
}

// NewSynthesizer creates a Synthesizer. fetchContext may be nil when no
// search credential is configured.
func NewSynthesizer(client groq.Client, model string, fetchContext ContextFunc) *Synthesizer {
	return &Synthesizer{client: client, model: model, fetchContext: fetchContext}
}

// Generate builds the research context block, calls the model, and
// post-processes the result. It never returns an error and never an empty
// insight string: total failure yields a fixed advisory message.
func (s *Synthesizer) Generate(ctx context.Context, req Request) model.Insight {
	name := req.CanonicalName
	if name == "" {
		name = req.CompanyName
	}

	depth := model.DepthStandard
	if req.IncludeStrategicContext {
		depth = model.DepthStrategic
	}

	out := model.Insight{
		CompanyName:   name,
		Summary:       req.Summary,
		Industry:      orUnknown(req.Industry),
		Website:       req.Website,
		News:          newsTitles(req.News),
		SourcesUsed:   req.SourcesUsed,
		ResearchDepth: depth,
	}

	prompt := s.buildPrompt(ctx, name, req)
	out.StrategicInsight = s.complete(ctx, name, prompt)
	return out
}

func (s *Synthesizer) buildPrompt(ctx context.Context, name string, req Request) string {
	var parts []string

	if req.Summary != "" {
		parts = append(parts, "## Company Overview\n"+req.Summary)
	}
	if req.Website != "" {
		parts = append(parts, "## Website\n"+req.Website)
	}
	if len(req.News) > 0 {
		var lines []string
		for i, n := range req.News {
			if i == maxNewsInContext {
				break
			}
			lines = append(lines, fmt.Sprintf("- **%s** - %s", n.Title, n.Link))
		}
		parts = append(parts, "## Recent News & Mentions\n"+strings.Join(lines, "\n"))
	}
	if req.Industry != "" && req.Industry != "Unknown" {
		parts = append(parts, "## Industry\n"+req.Industry)
	}
	if len(req.SourcesUsed) > 0 {
		parts = append(parts, "## Research Sources\n"+strings.Join(req.SourcesUsed, ", "))
	}

	if req.IncludeStrategicContext && s.fetchContext != nil {
		if strategic := s.fetchContext(ctx, name, req.Industry); len(strategic) > 0 {
			var lines []string
			for i, item := range strategic {
				if i == maxStrategicItems {
					break
				}
				lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, item.Content))
			}
			parts = append(parts, "## Market Context\n"+strings.Join(lines, "\n"))
		}
	}

	researchContext := "No detailed public information found through automated research."
	if len(parts) > 0 {
		researchContext = strings.Join(parts, "\n\n")
	}

	return fmt.Sprintf(insightPromptTemplate, name, researchContext)
}

// complete calls the model and applies the truncation guard: a long
// response with no terminal punctuation is almost certainly cut off, and a
// cut-off analysis is worse than an advisory.
func (s *Synthesizer) complete(ctx context.Context, name, prompt string) string {
	if s.client == nil {
		zap.L().Warn("insight: groq key not configured")
		return MsgFailed
	}

	resp, err := resilience.DoVal(ctx, retryConfig(), func(ctx context.Context) (*groq.ChatCompletionResponse, error) {
		return s.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
			Model:       s.model,
			Messages:    []groq.Message{{Role: "user", Content: prompt}},
			MaxTokens:   insightMaxTokens,
			Temperature: insightTemperature,
		})
	})
	if err != nil {
		zap.L().Error("insight: generation failed",
			zap.String("company", name),
			zap.Error(err),
		)
		return MsgFailed
	}

	content := strings.TrimSpace(resp.Content())
	if content == "" {
		return MsgFailed
	}

	if looksTruncated(content) {
		zap.L().Warn("insight: response looks truncated, returning advisory",
			zap.String("company", name),
			zap.Int("words", len(strings.Fields(content))),
		)
		return MsgTruncated
	}

	return content
}

func looksTruncated(content string) bool {
	if strings.HasSuffix(content, ".") ||
		strings.HasSuffix(content, "!") ||
		strings.HasSuffix(content, "?") {
		return false
	}
	return len(strings.Fields(content)) > truncationWordMin
}

func newsTitles(news []model.NewsItem) []string {
	titles := make([]string, 0, len(news))
	for _, n := range news {
		titles = append(titles, n.Title)
	}
	return titles
}

func orUnknown(industry string) string {
	if industry == "" {
		return "Unknown"
	}
	return industry
}

func retryConfig() resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.ShouldRetry = func(error) bool { return true }
	cfg.OnRetry = resilience.RetryLogger("groq", "generate_insight")
	return cfg
}
