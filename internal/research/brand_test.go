package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadscout/pkg/brandfetch"
)

func TestBrandFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		domain := strings.TrimPrefix(r.URL.Path, "/v2/brands/")
		if domain != "stripe.com" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"name": "Stripe", "logos": [{"url": "https://cdn.example.com/stripe.png"}]}`))
	}))
	defer srv.Close()

	f := NewBrandFetcher(brandfetch.NewClient("key", brandfetch.WithBaseURL(srv.URL)))
	brand, status := f.Fetch(context.Background(), "www.stripe.com/payments")

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "Stripe", brand.Name)
	assert.Equal(t, "https://cdn.example.com/stripe.png", brand.Logo)
}

func TestBrandFetchNameDefaultsToDomain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"logos": [{"src": "https://cdn.example.com/logo.svg"}]}`))
	}))
	defer srv.Close()

	f := NewBrandFetcher(brandfetch.NewClient("key", brandfetch.WithBaseURL(srv.URL)))
	brand, status := f.Fetch(context.Background(), "acme.io")

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "acme.io", brand.Name)
}

func TestBrandFetchDomainVariantFallback(t *testing.T) {
	var queried []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		domain := strings.TrimPrefix(r.URL.Path, "/v2/brands/")
		queried = append(queried, domain)
		if domain == "acme.com" {
			_, _ = w.Write([]byte(`{"name": "Acme"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewBrandFetcher(brandfetch.NewClient("key", brandfetch.WithBaseURL(srv.URL)))
	brand, status := f.Fetch(context.Background(), "acme.io")

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "Acme", brand.Name)
	// Bare domain first, then variants until one answers.
	assert.Equal(t, "acme.io", queried[0])
	assert.Contains(t, queried, "acme.com")
}

func TestBrandFetchAllVariantsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewBrandFetcher(brandfetch.NewClient("key", brandfetch.WithBaseURL(srv.URL)))
	brand, status := f.Fetch(context.Background(), "nosuch.example")

	assert.Equal(t, StatusEmpty, status)
	assert.Empty(t, brand.Name)
}

func TestBrandFetchNoCredential(t *testing.T) {
	f := NewBrandFetcher(nil)
	_, status := f.Fetch(context.Background(), "stripe.com")
	assert.Equal(t, StatusNoCredential, status)
}

func TestBrandFetchEmptyDomain(t *testing.T) {
	f := NewBrandFetcher(nil)
	_, status := f.Fetch(context.Background(), "")
	assert.Equal(t, StatusEmpty, status)
}
