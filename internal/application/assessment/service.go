// Package assessment provides the application-level service orchestrating the
// document analysis pipeline.  This package serves as the interface between
// HTTP/CLI handlers and the analysis packages: it normalizes and analyzes the
// document, detects clauses, scores the risk, and fans the result out to the
// cache, the store, and the event bus.
package assessment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/analysis/nlp"
	"github.com/turtacn/PolicyLens/internal/analysis/risk"
	"github.com/turtacn/PolicyLens/internal/config"
	"github.com/turtacn/PolicyLens/internal/infrastructure/cache/redis"
	"github.com/turtacn/PolicyLens/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/PolicyLens/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/PolicyLens/pkg/errors"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// AnalyzeInput contains input for a document analysis.
type AnalyzeInput struct {
	Document policy.Document     `json:"document"`
	Meta     policy.DocumentMeta `json:"meta"`
	Page     policy.PageInfo     `json:"page"`

	// Source labels where the request came from ("api", "cli").  Used for
	// metrics only; defaults to "api".
	Source string `json:"-"`
}

// Assessment is the full analysis result for one document.
type Assessment struct {
	ID           string               `json:"id"`
	URL          string               `json:"url,omitempty"`
	Score        *risk.Score          `json:"score"`
	Language     string               `json:"language"`
	Summary      []string             `json:"summary"`
	Clauses      *clause.Result       `json:"clauses"`
	Report       *clause.Report       `json:"report"`
	Permissions  []string             `json:"permissions"`
	ThirdParties []string             `json:"thirdParties"`
	Retention    clause.RetentionInfo `json:"retention"`
	NLP          *nlp.Result          `json:"nlp"`
	AnalyzedAt   time.Time            `json:"analyzedAt"`
}

// Service defines the interface for assessment application operations.
type Service interface {
	// Analyze runs the full pipeline on a document.  Identical documents
	// within the cache TTL return the cached assessment.
	Analyze(ctx context.Context, input *AnalyzeInput) (*Assessment, error)

	// GetAssessment loads a stored assessment by ID.
	GetAssessment(ctx context.Context, id string) (*Assessment, error)

	// GetLatestByURL loads the most recent stored assessment for a page URL.
	GetLatestByURL(ctx context.Context, url string) (*Assessment, error)

	// ListAssessments returns summaries of the most recent assessments.
	ListAssessments(ctx context.Context, limit int) ([]*AssessmentSummary, error)

	// CompareWithMarket positions a score against the market baseline.
	CompareWithMarket(score int) risk.MarketComparison
}

// AssessmentSummary is the list-view projection of a stored assessment.
type AssessmentSummary struct {
	ID        string    `json:"id"`
	URL       string    `json:"url,omitempty"`
	Score     int       `json:"score"`
	RiskLevel string    `json:"riskLevel"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

// serviceImpl implements the Service interface.  The cache, repository,
// producer, and metrics dependencies are all optional; a nil dependency
// disables that concern without affecting the analysis itself.
type serviceImpl struct {
	engine   nlp.Engine
	detector clause.Detector
	scorer   risk.Scorer

	cache    redis.Cache
	repo     repositories.AssessmentRepository
	producer *kafka.Producer
	metrics  *prometheus.AppMetrics

	summarySentences int
	maxDocumentBytes int
	cacheTTL         time.Duration
	logger           logging.Logger
}

// Option customizes the service.
type Option func(*serviceImpl)

// WithCache enables assessment caching.
func WithCache(cache redis.Cache) Option {
	return func(s *serviceImpl) { s.cache = cache }
}

// WithRepository enables assessment persistence.
func WithRepository(repo repositories.AssessmentRepository) Option {
	return func(s *serviceImpl) { s.repo = repo }
}

// WithProducer enables event publication.
func WithProducer(producer *kafka.Producer) Option {
	return func(s *serviceImpl) { s.producer = producer }
}

// WithMetrics enables metrics recording.
func WithMetrics(metrics *prometheus.AppMetrics) Option {
	return func(s *serviceImpl) { s.metrics = metrics }
}

// NewService creates the assessment application service.
func NewService(engine nlp.Engine, detector clause.Detector, scorer risk.Scorer, cfg config.AnalysisConfig, logger logging.Logger, opts ...Option) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &serviceImpl{
		engine:           engine,
		detector:         detector,
		scorer:           scorer,
		summarySentences: cfg.SummarySentences,
		maxDocumentBytes: cfg.MaxDocumentBytes,
		cacheTTL:         cfg.CacheTTL,
		logger:           logger.Named("assessment"),
	}
	if s.summarySentences <= 0 {
		s.summarySentences = config.DefaultSummarySentences
	}
	if s.maxDocumentBytes <= 0 {
		s.maxDocumentBytes = policy.MaxDocumentBytes
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *serviceImpl) Analyze(ctx context.Context, input *AnalyzeInput) (*Assessment, error) {
	if input == nil || strings.TrimSpace(input.Document.RawText) == "" {
		return nil, errors.New(errors.ErrCodeDocumentEmpty, "document text is empty")
	}
	source := input.Source
	if source == "" {
		source = "api"
	}

	if s.cache == nil {
		return s.analyze(ctx, input, source)
	}

	key := s.cacheKey(input)
	var cached Assessment
	loaderRan := false
	err := s.cache.GetOrSet(ctx, key, &cached, s.cacheTTL, func(ctx context.Context) (interface{}, error) {
		loaderRan = true
		return s.analyze(ctx, input, source)
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		if loaderRan {
			s.metrics.CacheMissesTotal.WithLabelValues().Inc()
		} else {
			s.metrics.CacheHitsTotal.WithLabelValues().Inc()
		}
	}
	return &cached, nil
}

// analyze runs the pipeline and fans the result out.  Store and event
// failures are logged and recorded but never fail the analysis itself.
func (s *serviceImpl) analyze(ctx context.Context, input *AnalyzeInput, source string) (*Assessment, error) {
	start := time.Now()

	nlpResult, err := s.engine.Analyze(input.Document.RawText, input.Document.LanguageHint)
	if err != nil {
		s.recordFailure(ctx, input.Page.URL, err)
		return nil, err
	}

	clauses := s.detector.DetectAll(nlpResult.CleanText, nlpResult.AllSentences)
	report := s.detector.Report(clauses)

	meta := input.Meta
	if meta.WordCount == 0 {
		meta.WordCount = nlpResult.Stats.WordCount
	}

	score, err := s.scorer.Score(risk.Input{
		NLP:          nlpResult,
		Clauses:      clauses,
		DocumentMeta: meta,
		PageInfo:     input.Page,
	})
	if err != nil {
		s.recordFailure(ctx, input.Page.URL, err)
		return nil, err
	}

	assessment := &Assessment{
		ID:           uuid.NewString(),
		URL:          input.Page.URL,
		Score:        score,
		Language:     nlpResult.Language,
		Summary:      s.engine.Summarize(nlpResult.Sentences, s.summarySentences),
		Clauses:      clauses,
		Report:       report,
		Permissions:  s.detector.AnalyzePermissions(nlpResult.CleanText),
		ThirdParties: s.detector.DetectThirdParties(nlpResult.CleanText),
		Retention:    s.detector.AnalyzeRetention(nlpResult.CleanText),
		NLP:          nlpResult,
		AnalyzedAt:   time.Now().UTC(),
	}

	s.recordAnalysis(assessment, source, nlpResult.Truncated, time.Since(start))
	s.persist(ctx, assessment)
	s.publish(ctx, assessment)

	s.logger.Info("document analyzed",
		logging.String("assessment_id", assessment.ID),
		logging.String("url", assessment.URL),
		logging.Int("score", score.Score),
		logging.String("risk_level", score.RiskLevel.Level),
		logging.Int("clause_count", clauses.ClauseCount))
	return assessment, nil
}

func (s *serviceImpl) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	if s.repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "assessment store is not configured")
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeRecord(record)
}

func (s *serviceImpl) GetLatestByURL(ctx context.Context, url string) (*Assessment, error) {
	if s.repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "assessment store is not configured")
	}
	record, err := s.repo.GetLatestByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	return decodeRecord(record)
}

func (s *serviceImpl) ListAssessments(ctx context.Context, limit int) ([]*AssessmentSummary, error) {
	if s.repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "assessment store is not configured")
	}
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]*AssessmentSummary, len(records))
	for i, r := range records {
		summaries[i] = &AssessmentSummary{
			ID:        r.ID,
			URL:       r.URL,
			Score:     r.Score,
			RiskLevel: r.RiskLevel,
			Language:  r.Language,
			CreatedAt: r.CreatedAt,
		}
	}
	return summaries, nil
}

func (s *serviceImpl) CompareWithMarket(score int) risk.MarketComparison {
	return s.scorer.CompareWithMarket(score)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fan-out helpers
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) persist(ctx context.Context, a *Assessment) {
	if s.repo == nil {
		return
	}
	payload, err := json.Marshal(a)
	if err != nil {
		s.logger.Error("failed to encode assessment payload", logging.Err(err))
		return
	}
	record := &repositories.AssessmentRecord{
		ID:        a.ID,
		URL:       a.URL,
		Score:     a.Score.Score,
		RiskLevel: a.Score.RiskLevel.Level,
		Language:  a.Language,
		Payload:   payload,
		CreatedAt: a.AnalyzedAt,
	}
	status := "ok"
	if err := s.repo.Save(ctx, record); err != nil {
		status = "error"
		s.logger.Error("failed to store assessment",
			logging.String("assessment_id", a.ID), logging.Err(err))
	}
	if s.metrics != nil {
		s.metrics.StoreWritesTotal.WithLabelValues(status).Inc()
	}
}

func (s *serviceImpl) publish(ctx context.Context, a *Assessment) {
	if s.producer == nil {
		return
	}
	status := "ok"
	err := s.producer.PublishAnalysisCompleted(ctx, kafka.AnalysisCompletedPayload{
		AssessmentID: a.ID,
		URL:          a.URL,
		Score:        a.Score.Score,
		RiskLevel:    a.Score.RiskLevel.Level,
		Language:     a.Language,
		ClauseCount:  a.Clauses.ClauseCount,
		AnalyzedAt:   a.AnalyzedAt,
	})
	if err != nil {
		status = "error"
		s.logger.Error("failed to publish analysis event",
			logging.String("assessment_id", a.ID), logging.Err(err))
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues(kafka.TopicAnalysisCompleted, status).Inc()
	}
}

func (s *serviceImpl) recordAnalysis(a *Assessment, source string, truncated bool, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnalysesTotal.WithLabelValues(a.Score.RiskLevel.Level, source).Inc()
	s.metrics.AnalysisDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	if truncated {
		s.metrics.DocumentsTruncated.WithLabelValues().Inc()
	}
	for clauseType, detection := range a.Clauses.DetectedClauses {
		if detection.Detected {
			s.metrics.ClauseDetections.WithLabelValues(clauseType).Inc()
		}
	}
}

func (s *serviceImpl) recordFailure(ctx context.Context, url string, err error) {
	if s.metrics != nil {
		s.metrics.AnalysisErrorsTotal.WithLabelValues(string(errors.GetCode(err))).Inc()
	}
	if s.producer != nil {
		publishErr := s.producer.PublishAnalysisFailed(ctx, kafka.AnalysisFailedPayload{
			URL:      url,
			Code:     string(errors.GetCode(err)),
			Message:  err.Error(),
			FailedAt: time.Now().UTC(),
		})
		if publishErr != nil {
			s.logger.Error("failed to publish failure event", logging.Err(publishErr))
		}
	}
}

// cacheKey derives a stable key from the truncated document body plus the
// metadata and page URL, so an oversize document and its truncated form share
// one entry while the same text served from different pages does not.  The
// body is truncated at the same ceiling the engine applies, so documents that
// only diverge past the ceiling still share an entry and documents that
// diverge within it never do.
func (s *serviceImpl) cacheKey(input *AnalyzeInput) string {
	h := sha256.New()
	h.Write([]byte(policy.TruncateText(input.Document.RawText, s.maxDocumentBytes)))
	if metaJSON, err := json.Marshal(input.Meta); err == nil {
		h.Write(metaJSON)
	}
	h.Write([]byte(input.Page.URL))
	return "assessment:" + hex.EncodeToString(h.Sum(nil))
}

func decodeRecord(record *repositories.AssessmentRecord) (*Assessment, error) {
	var a Assessment
	if err := json.Unmarshal(record.Payload, &a); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode stored assessment")
	}
	return &a, nil
}

//Personal.AI order the ending
