// Package server exposes the research pipeline over HTTP for the web UI.
// All responses use a {status: success|error} envelope; handler failures
// become error envelopes, never panics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadscout/internal/insight"
	"github.com/sells-group/leadscout/internal/model"
)

// ResearchService is the research surface the server exposes.
type ResearchService interface {
	Research(ctx context.Context, company, website string) *model.Lead
	StrategicContext(ctx context.Context, company, industry string) []model.SearchResult
}

// InsightService generates strategic assessments.
type InsightService interface {
	Generate(ctx context.Context, req insight.Request) model.Insight
}

// Server is the HTTP API.
type Server struct {
	research ResearchService
	insights InsightService
}

// New creates a Server.
func New(research ResearchService, insights InsightService) *Server {
	return &Server{research: research, insights: insights}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/api/enrich", s.handleEnrich)
	r.Post("/api/insights", s.handleInsights)
	r.Get("/api/scrape", s.handleScrape)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("server: starting", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}
