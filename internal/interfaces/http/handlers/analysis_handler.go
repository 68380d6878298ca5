package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/application/assessment"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/pkg/errors"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// AnalysisHandler handles document analysis HTTP requests.
type AnalysisHandler struct {
	service assessment.Service
	logger  logging.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service assessment.Service, logger logging.Logger) *AnalysisHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AnalysisHandler{
		service: service,
		logger:  logger.Named("http.analysis"),
	}
}

// Analyze handles POST /api/v1/analyze.  The meta object is required at this
// boundary; the pipeline itself never sees a request without one.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Document policy.Document      `json:"document"`
		Meta     *policy.DocumentMeta `json:"meta"`
		Page     policy.PageInfo      `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeBadRequest, "invalid request body")
		return
	}
	if req.Meta == nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeMetadataMissing, "document metadata is required")
		return
	}
	input := assessment.AnalyzeInput{
		Document: req.Document,
		Meta:     *req.Meta,
		Page:     req.Page,
		Source:   "api",
	}

	result, err := h.service.Analyze(r.Context(), &input)
	if err != nil {
		h.logger.Warn("analysis request failed", logging.Err(err))
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/assessments/{assessmentID}.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assessmentID")
	result, err := h.service.GetAssessment(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /api/v1/assessments.  A url query parameter narrows the
// lookup to the latest assessment for that page.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	if url := r.URL.Query().Get("url"); url != "" {
		result, err := h.service.GetLatestByURL(r.Context(), url)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	limit := parseLimit(r, 20, 100)
	summaries, err := h.service.ListAssessments(r.Context(), limit)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": summaries,
		"limit":       limit,
	})
}

// CompareMarket handles GET /api/v1/market/compare.
func (h *AnalysisHandler) CompareMarket(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil || score < 0 || score > 100 {
		writeError(w, http.StatusBadRequest, errors.ErrCodeBadRequest, "score must be an integer in [0, 100]")
		return
	}
	writeJSON(w, http.StatusOK, h.service.CompareWithMarket(score))
}

// clauseInfo is the catalog projection returned by ListClauses.
type clauseInfo struct {
	Type    string `json:"type"`
	Weight  int    `json:"weight"`
	Summary string `json:"summary"`
}

// ListClauses handles GET /api/v1/clauses.  It exposes the clause catalog so
// clients can render legends without hardcoding the clause types.
func (h *AnalysisHandler) ListClauses(w http.ResponseWriter, _ *http.Request) {
	catalog := clause.Catalog()
	infos := make([]clauseInfo, len(catalog))
	for i, def := range catalog {
		infos[i] = clauseInfo{
			Type:    def.Type,
			Weight:  def.Weight,
			Summary: clause.SummaryFor(def.Type),
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"clauses": infos})
}

//Personal.AI order the ending
