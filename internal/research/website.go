package research

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/internal/urlutil"
)

const (
	maxPageBytes     = 512 * 1024
	maxContentChars  = 500
	maxFirstParChars = 300
	minContentChars  = 50
)

// contentSelectors are tried in priority order for the main content block.
var contentSelectors = []string{"main", "article", ".content", "#content", ".main-content"}

// WebsiteFetcher extracts a compact text summary straight from a company's
// own website. Useful for niche companies absent from knowledge bases.
type WebsiteFetcher struct {
	http *http.Client
}

// NewWebsiteFetcher creates a WebsiteFetcher with the given page timeout.
func NewWebsiteFetcher(timeout time.Duration) *WebsiteFetcher {
	return &WebsiteFetcher{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the page and assembles "Title: ... | Description: ... |
// Headings: ... | Content: ..." from whatever the page provides. Returns
// an empty string for invalid URLs and on any failure.
func (f *WebsiteFetcher) Fetch(ctx context.Context, pageURL string) (string, Status) {
	if !urlutil.IsValidURL(pageURL) {
		return "", StatusEmpty
	}

	body, err := resilience.DoVal(ctx, retryConfig("website", "fetch"), func(ctx context.Context) ([]byte, error) {
		return f.get(ctx, pageURL)
	})
	if err != nil {
		zap.L().Warn("research: website fetch failed",
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return "", StatusError
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		zap.L().Warn("research: website parse failed",
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return "", StatusError
	}

	return extractContent(doc), StatusOK
}

func (f *WebsiteFetcher) get(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "website: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; LeadscoutBot/1.0)")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "website: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		err := eris.Errorf("website: status %d", resp.StatusCode)
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(err, resp.StatusCode)
		}
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, eris.Wrap(err, "website: read body")
	}
	return body, nil
}

// extractContent pulls title, meta description, the first two h1 headings,
// and the first substantial content region (else body text) out of a page.
func extractContent(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer").Remove()

	title := collapseSpace(doc.Find("title").First().Text())

	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	desc = collapseSpace(desc)

	var headings []string
	doc.Find("h1").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if h := collapseSpace(s.Text()); h != "" {
			headings = append(headings, h)
		}
		return len(headings) < 2
	})

	firstPara := truncate(collapseSpace(doc.Find("p").First().Text()), maxFirstParChars)

	var mainContent string
	for _, sel := range contentSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		text := collapseSpace(node.Text())
		if len(text) > minContentChars {
			mainContent = truncate(text, maxContentChars)
			break
		}
	}
	if mainContent == "" {
		mainContent = truncate(collapseSpace(doc.Find("body").Text()), maxContentChars)
	}

	var parts []string
	if title != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", title))
	}
	if desc != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", desc))
	}
	if len(headings) > 0 {
		parts = append(parts, fmt.Sprintf("Headings: %s", strings.Join(headings, ", ")))
	}
	if mainContent != "" {
		parts = append(parts, fmt.Sprintf("Content: %s", mainContent))
	} else if firstPara != "" {
		parts = append(parts, fmt.Sprintf("Content: %s", firstPara))
	}

	if len(parts) == 0 {
		return "Website content extracted but limited text available"
	}
	return strings.Join(parts, " | ")
}

// collapseSpace trims and normalizes all runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
