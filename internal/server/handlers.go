package server

import (
	"encoding/json"
	"net/http"

	"github.com/sells-group/leadscout/internal/insight"
	"github.com/sells-group/leadscout/internal/model"
	"github.com/sells-group/leadscout/internal/urlutil"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type enrichRequest struct {
	CompanyName string `json:"company_name"`
	CompanyURL  string `json:"company_url"`
}

func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !urlutil.IsValidCompanyName(req.CompanyName) {
		writeError(w, http.StatusBadRequest, "company_name must be at least 2 characters of letters, digits, spaces, or '&.-'")
		return
	}
	if req.CompanyURL != "" && !urlutil.IsValidURL(req.CompanyURL) {
		writeError(w, http.StatusBadRequest, "company_url must be a valid http(s) URL")
		return
	}

	// The name is researched as given; company_name in the record always
	// echoes the caller's input.
	lead := s.research.Research(r.Context(), req.CompanyName, req.CompanyURL)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"data":         []*model.Lead{lead},
		"sources_used": lead.SourcesUsed,
	})
}

type insightsRequest struct {
	CompanyName              string           `json:"company_name"`
	CanonicalName            string           `json:"canonical_name"`
	Summary                  string           `json:"summary"`
	Industry                 string           `json:"industry"`
	Website                  string           `json:"website"`
	News                     []model.NewsItem `json:"news"`
	SourcesUsed              []string         `json:"sources_used"`
	IncludeStrategicResearch bool             `json:"include_strategic_research"`
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CompanyName == "" && req.CanonicalName == "" {
		writeError(w, http.StatusBadRequest, "company_name is required")
		return
	}

	result := s.insights.Generate(r.Context(), insight.Request{
		CompanyName:             req.CompanyName,
		CanonicalName:           req.CanonicalName,
		Summary:                 req.Summary,
		Industry:                req.Industry,
		Website:                 req.Website,
		News:                    req.News,
		SourcesUsed:             req.SourcesUsed,
		IncludeStrategicContext: req.IncludeStrategicResearch,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "success",
		"analysis_type": "Business Assessment",
		"insights":      []model.Insight{result},
	})
}

type scrapeResult struct {
	CompanyName string `json:"company_name"`
	Summary     string `json:"summary"`
	CompanyURL  string `json:"company_url"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	results := s.research.StrategicContext(r.Context(), query, "")
	if len(results) == 0 {
		// Empty searches are an error envelope, not an HTTP error.
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "no results found for query",
		})
		return
	}

	out := make([]scrapeResult, 0, len(results))
	for _, item := range results {
		out = append(out, scrapeResult{
			CompanyName: item.Title,
			Summary:     item.Content,
			CompanyURL:  item.Source,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"count":  len(out),
		"data":   out,
	})
}
