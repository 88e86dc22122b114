// Package model defines the request-scoped records produced by research
// and insight generation. Records are built fresh per request and are not
// persisted.
package model

// ResearchDepth labels how much supplementary research went into an insight.
type ResearchDepth string

const (
	DepthStandard  ResearchDepth = "Standard Analysis"
	DepthStrategic ResearchDepth = "Strategic Context Included"
)

// Source labels recorded in Lead.SourcesUsed, in stage order.
const (
	SourceBrandfetch     = "Brandfetch"
	SourceWebsiteContent = "Website Content"
	SourceDuckDuckGo     = "DuckDuckGo"
	SourceWebsiteSummary = "Website Summary"
	SourceNewsData       = "NewsData"
	SourceIndustryAI     = "AI Industry Classification"
)

// NewsItem is a single news headline with its link.
type NewsItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Lead is the aggregated research record for one company. It is mutated
// field-by-field as each source contributes during aggregation and is
// treated as immutable once returned.
type Lead struct {
	CompanyName   string     `json:"company_name"`
	Website       string     `json:"website"`
	CanonicalName string     `json:"canonical_name"`
	Summary       string     `json:"summary"`
	News          []NewsItem `json:"news"`
	Logo          string     `json:"logo"`
	Industry      string     `json:"industry"`
	SourcesUsed   []string   `json:"sources_used"`
	RunID         string     `json:"run_id,omitempty"`
}

// NewLead returns a Lead with all fields defaulted for the given input.
// CanonicalName starts equal to the input name; brand lookup may overwrite
// it at most once.
func NewLead(companyName, website string) *Lead {
	return &Lead{
		CompanyName:   companyName,
		Website:       website,
		CanonicalName: companyName,
		News:          []NewsItem{},
		SourcesUsed:   []string{},
	}
}

// AddSource appends a source label to the provenance list. The list only
// ever grows during aggregation.
func (l *Lead) AddSource(name string) {
	l.SourcesUsed = append(l.SourcesUsed, name)
}

// SearchResult is a normalized organic search hit used as strategic context.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// Insight is the synthesized strategic assessment for a lead.
type Insight struct {
	CompanyName      string        `json:"company_name"`
	Summary          string        `json:"summary"`
	Industry         string        `json:"industry"`
	Website          string        `json:"website"`
	News             []string      `json:"news"`
	StrategicInsight string        `json:"strategic_insight"`
	SourcesUsed      []string      `json:"sources_used"`
	ResearchDepth    ResearchDepth `json:"research_depth"`
}
