package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PolicyLens/internal/analysis/risk"
	"github.com/turtacn/PolicyLens/internal/application/assessment"
	apperrors "github.com/turtacn/PolicyLens/pkg/errors"
)

// stubService implements assessment.Service with function fields.
type stubService struct {
	analyzeFn        func(ctx context.Context, input *assessment.AnalyzeInput) (*assessment.Assessment, error)
	getFn            func(ctx context.Context, id string) (*assessment.Assessment, error)
	getLatestFn      func(ctx context.Context, url string) (*assessment.Assessment, error)
	listFn           func(ctx context.Context, limit int) ([]*assessment.AssessmentSummary, error)
	compareMarketRet risk.MarketComparison
}

func (s *stubService) Analyze(ctx context.Context, input *assessment.AnalyzeInput) (*assessment.Assessment, error) {
	return s.analyzeFn(ctx, input)
}

func (s *stubService) GetAssessment(ctx context.Context, id string) (*assessment.Assessment, error) {
	return s.getFn(ctx, id)
}

func (s *stubService) GetLatestByURL(ctx context.Context, url string) (*assessment.Assessment, error) {
	return s.getLatestFn(ctx, url)
}

func (s *stubService) ListAssessments(ctx context.Context, limit int) ([]*assessment.AssessmentSummary, error) {
	return s.listFn(ctx, limit)
}

func (s *stubService) CompareWithMarket(_ int) risk.MarketComparison {
	return s.compareMarketRet
}

func newTestRouter(svc assessment.Service) http.Handler {
	h := NewAnalysisHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/analyze", h.Analyze)
	r.Get("/clauses", h.ListClauses)
	r.Get("/market/compare", h.CompareMarket)
	r.Get("/assessments", h.List)
	r.Get("/assessments/{assessmentID}", h.Get)
	return r
}

func TestAnalyzeHandler(t *testing.T) {
	svc := &stubService{
		analyzeFn: func(_ context.Context, input *assessment.AnalyzeInput) (*assessment.Assessment, error) {
			assert.Equal(t, "api", input.Source)
			return &assessment.Assessment{ID: "a-1", Language: "en", Score: &risk.Score{Score: 60}}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"document":{"raw_text":"We collect your data."},"meta":{},"page":{"url":"https://example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got assessment.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a-1", got.ID)
	assert.Equal(t, 60, got.Score.Score)
}

func TestAnalyzeHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeHandler_EmptyDocument(t *testing.T) {
	svc := &stubService{
		analyzeFn: func(_ context.Context, _ *assessment.AnalyzeInput) (*assessment.Assessment, error) {
			return nil, apperrors.New(apperrors.ErrCodeDocumentEmpty, "document text is empty")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"document":{"raw_text":""},"meta":{}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, apperrors.HTTPStatus(apperrors.ErrCodeDocumentEmpty), rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ErrCodeDocumentEmpty), resp.Code)
}

func TestAnalyzeHandler_MissingMeta(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"document":{"raw_text":"Some policy text."}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperrors.ErrCodeMetadataMissing), resp.Code)
}

func TestGetAssessmentHandler_NotFound(t *testing.T) {
	svc := &stubService{
		getFn: func(_ context.Context, id string) (*assessment.Assessment, error) {
			return nil, apperrors.New(apperrors.ErrCodeAssessmentNotFound, "assessment not found")
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/assessments/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAssessmentsHandler(t *testing.T) {
	svc := &stubService{
		listFn: func(_ context.Context, limit int) ([]*assessment.AssessmentSummary, error) {
			assert.Equal(t, 5, limit)
			return []*assessment.AssessmentSummary{
				{ID: "a-1", Score: 80, RiskLevel: "LOW", CreatedAt: time.Now()},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/assessments?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Assessments []*assessment.AssessmentSummary `json:"assessments"`
		Limit       int                             `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Limit)
	require.Len(t, resp.Assessments, 1)
	assert.Equal(t, "a-1", resp.Assessments[0].ID)
}

func TestListAssessmentsHandler_ByURL(t *testing.T) {
	svc := &stubService{
		getLatestFn: func(_ context.Context, url string) (*assessment.Assessment, error) {
			assert.Equal(t, "https://example.com/privacy", url)
			return &assessment.Assessment{ID: "a-2"}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/assessments?url=https%3A%2F%2Fexample.com%2Fprivacy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got assessment.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a-2", got.ID)
}

func TestCompareMarketHandler(t *testing.T) {
	svc := &stubService{
		compareMarketRet: risk.MarketComparison{Score: 80, Comparison: "Mieux que la moyenne"},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/market/compare?score=80", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got risk.MarketComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Mieux que la moyenne", got.Comparison)
}

func TestCompareMarketHandler_InvalidScore(t *testing.T) {
	router := newTestRouter(&stubService{})

	for _, q := range []string{"", "abc", "-1", "101"} {
		req := httptest.NewRequest(http.MethodGet, "/market/compare?score="+q, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestListClausesHandler(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/clauses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Clauses []clauseInfo `json:"clauses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Clauses, 10)

	types := make(map[string]clauseInfo, len(resp.Clauses))
	for _, c := range resp.Clauses {
		types[c.Type] = c
	}
	assert.Equal(t, 10, types["DATA_SELLING"].Weight)
	assert.Equal(t, -5, types["USER_RIGHTS"].Weight)
	assert.NotEmpty(t, types["DATA_SELLING"].Summary)
}

//Personal.AI order the ending
