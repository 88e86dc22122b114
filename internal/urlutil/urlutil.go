// Package urlutil holds URL validation, domain extraction, and company name
// normalization helpers shared by the research pipeline.
package urlutil

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsValidURL reports whether s parses to an http or https URL with a
// non-empty host.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ExtractDomain returns the host of a URL-like input, else empty string.
// The host is returned as given (case and any "www." prefix preserved).
// A bare domain (contains "." and no "/") passes through trimmed.
//
// CleanDomain applies different normalization; the two are kept as
// distinct operations because brand lookup and display disagree on what
// a "domain" is.
func ExtractDomain(s string) string {
	if s == "" {
		return ""
	}
	if !IsValidURL(s) {
		if !strings.Contains(s, "/") && strings.Contains(s, ".") {
			return strings.TrimSpace(s)
		}
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Host
}

// CleanDomain returns a lowercased domain with "www." stripped, falling
// back to the URL path when no host is present (so bare domains work).
func CleanDomain(s string) string {
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	domain := u.Host
	if domain == "" {
		domain = u.Path
	}
	domain = strings.ReplaceAll(domain, "www.", "")
	return strings.ToLower(strings.TrimSpace(domain))
}

var (
	legalSuffixRe = regexp.MustCompile(`(?i)\s+(inc\.?|ltd\.?|corp\.?|co\.?)$`)
	companyNameRe = regexp.MustCompile(`^[A-Za-z0-9 &.\-]+$`)
	titleCaser    = cases.Title(language.English)
)

// NormalizeCompanyName trims whitespace, strips one trailing legal-entity
// suffix token, and title-cases the remainder. Title-casing applies even
// with no suffix to strip, so "OpenAI" becomes "Openai".
func NormalizeCompanyName(name string) string {
	if name == "" {
		return ""
	}
	name = strings.TrimSpace(name)
	name = legalSuffixRe.ReplaceAllString(name, "")
	return titleCaser.String(name)
}

// IsValidCompanyName reports whether a name is plausible input: at least
// two characters and limited to letters, digits, spaces, and '&.-'.
func IsValidCompanyName(name string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false
	}
	return companyNameRe.MatchString(name)
}
