// Package report presents a researched lead and its insight on a terminal.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/sells-group/leadscout/internal/model"
)

// Section is one titled block of an insight.
type Section struct {
	Title string
	Body  string
}

// sectionTitles are the headings the analysis prompt asks for, in order.
var sectionTitles = [3]string{
	"Business Model & Market Position",
	"Growth Signals & Market Presence",
	"Strategic Assessment & Recommendations",
}

var sectionMarkerRe = regexp.MustCompile(`\n\s*\d[).]`)

// SplitSections splits insight text on numbered section markers into at
// most three titled sections. Splitting is best effort: text without
// markers comes back as a single generic section, and preamble before the
// first marker is dropped when all three sections are present.
func SplitSections(text string) []Section {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parts := sectionMarkerRe.Split("\n"+text, -1)
	var bodies []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			bodies = append(bodies, p)
		}
	}

	if len(bodies) < 2 {
		return []Section{{Title: "Strategic Assessment", Body: text}}
	}

	// A leading part that survived the split is preamble, not a section.
	if len(bodies) > len(sectionTitles) {
		bodies = bodies[len(bodies)-len(sectionTitles):]
	}

	sections := make([]Section, 0, len(bodies))
	for i, body := range bodies {
		sections = append(sections, Section{
			Title: sectionTitles[i],
			Body:  stripHeadingEcho(body),
		})
	}
	return sections
}

// stripHeadingEcho drops a first line that just restates the section title
// the model was asked to produce.
func stripHeadingEcho(body string) string {
	line, rest, found := strings.Cut(body, "\n")
	if !found {
		return body
	}
	plain := strings.Trim(strings.TrimSpace(line), "*# ")
	for _, title := range sectionTitles {
		if strings.EqualFold(plain, title) {
			return strings.TrimSpace(rest)
		}
	}
	return body
}

const maxHeadlines = 3

// Render writes a lead and its insight as a readable terminal report.
func Render(w io.Writer, lead *model.Lead, ins model.Insight) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", ins.CompanyName)
	if ins.Industry != "" && ins.Industry != "Unknown" {
		fmt.Fprintf(w, "  Industry: %s\n", ins.Industry)
	}
	if lead.Website != "" {
		fmt.Fprintf(w, "  Website:  %s\n", lead.Website)
	}
	fmt.Fprintln(w, rule)

	if lead.Summary != "" {
		fmt.Fprintln(w, "\nOverview")
		fmt.Fprintln(w, wrapIndent(lead.Summary, "  "))
	}

	for _, sec := range SplitSections(ins.StrategicInsight) {
		fmt.Fprintf(w, "\n%s\n", sec.Title)
		for _, line := range strings.Split(sec.Body, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
			if line == "" {
				continue
			}
			fmt.Fprintf(w, "  • %s\n", line)
		}
	}

	if len(lead.News) > 0 {
		fmt.Fprintln(w, "\nRecent Headlines")
		for i, n := range lead.News {
			if i == maxHeadlines {
				break
			}
			fmt.Fprintf(w, "  • %s\n", n.Title)
		}
	}

	if len(lead.SourcesUsed) > 0 {
		fmt.Fprintf(w, "\nSources: %s\n", strings.Join(lead.SourcesUsed, ", "))
	}
	fmt.Fprintf(w, "Depth:   %s\n", ins.ResearchDepth)
}

func wrapIndent(text, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}

	const width = 76
	var b strings.Builder
	line := indent
	for _, word := range words {
		if len(line)+len(word)+1 > width && line != indent {
			b.WriteString(line + "\n")
			line = indent
		}
		if line != indent {
			line += " "
		}
		line += word
	}
	b.WriteString(line)
	return b.String()
}
