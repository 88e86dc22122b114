package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/resilience"
	"github.com/sells-group/leadscout/pkg/brandfetch"
)

// Brand holds the logo and canonical name returned by brand lookup.
type Brand struct {
	Logo string
	Name string
}

// BrandFetcher resolves a domain to its brand identity, trying a small set
// of domain variants when the exact domain has no brand record.
type BrandFetcher struct {
	client brandfetch.Client
}

// NewBrandFetcher creates a BrandFetcher. A nil client means no credential
// is configured and every lookup short-circuits.
func NewBrandFetcher(client brandfetch.Client) *BrandFetcher {
	return &BrandFetcher{client: client}
}

// Fetch looks up brand data for a domain. The returned name defaults to
// the queried domain when the provider omits one.
func (f *BrandFetcher) Fetch(ctx context.Context, domain string) (Brand, Status) {
	if domain == "" {
		return Brand{}, StatusEmpty
	}
	if f.client == nil {
		zap.L().Warn("research: brandfetch key not configured, skipping brand lookup")
		return Brand{}, StatusNoCredential
	}

	clean := strings.TrimPrefix(domain, "www.")
	clean = strings.SplitN(clean, "/", 2)[0]

	brand, ok := f.lookup(ctx, clean)
	if ok {
		return brand, StatusOK
	}

	if strings.Contains(clean, ".") {
		for _, variant := range domainVariants(clean) {
			if variant == clean {
				continue
			}
			if brand, ok := f.lookup(ctx, variant); ok {
				zap.L().Debug("research: brand found via domain variant",
					zap.String("domain", clean),
					zap.String("variant", variant),
				)
				return brand, StatusOK
			}
		}
	}

	return Brand{}, StatusEmpty
}

func (f *BrandFetcher) lookup(ctx context.Context, domain string) (Brand, bool) {
	resp, err := resilience.DoVal(ctx, retryConfig("brandfetch", "brand"), func(ctx context.Context) (*brandfetch.BrandResponse, error) {
		return f.client.Brand(ctx, domain)
	})
	if err != nil {
		zap.L().Debug("research: brand lookup failed",
			zap.String("domain", domain),
			zap.Error(err),
		)
		return Brand{}, false
	}

	name := resp.Name
	if name == "" {
		name = domain
	}
	return Brand{Logo: resp.LogoURL(), Name: name}, true
}

// domainVariants returns alternative spellings of a domain worth probing
// when the exact one has no brand record.
func domainVariants(domain string) []string {
	return []string{
		domain,
		"www." + domain,
		strings.ReplaceAll(domain, ".com", ".co"),
		strings.ReplaceAll(domain, ".io", ".com"),
	}
}
