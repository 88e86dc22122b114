package urlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"https", "https://example.com", true},
		{"http_with_path", "http://example.com/about", true},
		{"bare_domain", "example.com", false},
		{"ftp_scheme", "ftp://example.com", false},
		{"scheme_only", "https://", false},
		{"empty", "", false},
		{"garbage", "not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.input))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full_url_keeps_www_and_case", "https://www.Example.com/path", "www.Example.com"},
		{"bare_domain_passthrough", " stripe.com ", "stripe.com"},
		{"bare_domain_with_slash", "stripe.com/about", ""},
		{"no_dot", "stripe", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.input))
		})
	}
}

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips_www_and_lowercases", "https://www.Example.com/path", "example.com"},
		{"bare_domain_via_path", "stripe.com", "stripe.com"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDomain(tt.input))
		})
	}
}

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips_suffix_and_period", "  Acme Corp. ", "Acme"},
		{"title_cases_without_suffix", "OpenAI", "Openai"},
		{"inc_lowercase", "widgets inc", "Widgets"},
		{"ltd", "Tea Traders Ltd", "Tea Traders"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCompanyName(tt.input))
		})
	}
}

func TestIsValidCompanyName(t *testing.T) {
	assert.True(t, IsValidCompanyName("Acme & Sons Co."))
	assert.True(t, IsValidCompanyName("A1-Labs"))
	assert.False(t, IsValidCompanyName("x"))
	assert.False(t, IsValidCompanyName("  "))
	assert.False(t, IsValidCompanyName("weird$name"))
}
