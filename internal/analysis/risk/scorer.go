package risk

import (
	"math"
	"strings"
	"time"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/analysis/nlp"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/pkg/errors"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// Scoring constants.  The multipliers reward transparency signals, the
// penalties punish their absence; both tuned so the combined range stays
// within 0 to 100 after clamping.
const (
	baseScore = 50

	multiplierHasPrivacyPolicy = 1.1
	multiplierHasCookiePolicy  = 1.05
	multiplierClearLanguage    = 1.15
	multiplierShortDocument    = 1.1
	multiplierEasyToFind       = 1.05

	penaltyVagueLanguage = -10
	penaltyVeryLong      = -15
	penaltyHardToFind    = -10
	penaltyNoContactInfo = -5
	penaltyOutdated      = -10

	shortDocumentWords = 5000
	veryLongWords      = 10000

	clearLanguageFleschMin  = 60
	opaqueLanguageFleschMax = 30

	outdatedAfter = 2 * 365 * 24 * time.Hour
)

// Input bundles everything the scorer needs about one document.
type Input struct {
	NLP          *nlp.Result
	Clauses      *clause.Result
	DocumentMeta policy.DocumentMeta
	PageInfo     policy.PageInfo
}

// Score is the scored assessment of a document.
type Score struct {
	Score           int       `json:"score"`
	RiskLevel       Level     `json:"riskLevel"`
	Confidence      float64   `json:"confidence"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}

// Scorer turns analysis results into a transparency score.
type Scorer interface {
	// Score computes the transparency score, risk level, confidence,
	// breakdown, and recommendations for a document.
	Score(input Input) (*Score, error)

	// CompareWithMarket positions a score against the observed market
	// average.
	CompareWithMarket(score int) MarketComparison
}

type scorer struct {
	logger logging.Logger
	now    func() time.Time
}

// Option configures the scorer.
type Option func(*scorer)

// WithClock overrides the time source used for staleness checks.
func WithClock(now func() time.Time) Option {
	return func(s *scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScorer builds a scorer.  A nil logger is replaced with a no-op logger.
func NewScorer(logger logging.Logger, opts ...Option) Scorer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &scorer{
		logger: logger.Named("risk"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scorer) Score(input Input) (*Score, error) {
	if input.NLP == nil {
		return nil, errors.New(errors.ErrCodeAnalysisFailed, "nlp results are required for scoring")
	}

	score := float64(baseScore)
	score = s.applyPositiveMultipliers(score, input.DocumentMeta, input.PageInfo)
	score = s.applyClausePenalties(score, input.Clauses)
	score = s.applyDocumentPenalties(score, input.NLP, input.DocumentMeta)
	score = s.applyReadabilityBonus(score, input.NLP.Readability)

	final := int(math.Round(math.Max(0, math.Min(100, score))))

	result := &Score{
		Score:           final,
		RiskLevel:       DetermineLevel(final),
		Confidence:      s.calculateConfidence(input),
		Breakdown:       s.breakdown(input),
		Recommendations: s.recommendations(final, input.Clauses),
	}

	s.logger.Debug("transparency score computed",
		logging.Int("score", final),
		logging.String("risk_level", result.RiskLevel.Level),
		logging.Float64("confidence", result.Confidence))

	return result, nil
}

func (s *scorer) applyPositiveMultipliers(score float64, meta policy.DocumentMeta, page policy.PageInfo) float64 {
	if meta.HasPrivacyPolicy {
		score *= multiplierHasPrivacyPolicy
	}
	if meta.HasCookiePolicy {
		score *= multiplierHasCookiePolicy
	}
	if meta.WordCount < shortDocumentWords {
		score *= multiplierShortDocument
	}
	if page.EasyToFind {
		score *= multiplierEasyToFind
	}
	return score
}

func (s *scorer) applyClausePenalties(score float64, clauses *clause.Result) float64 {
	if clauses == nil {
		return score
	}

	// The aggregate weight drives a graduated penalty, on top of which
	// the most serious clause types carry an extra fixed charge.
	if clauses.TotalWeight.Negative > 0 {
		score -= float64(clauses.TotalWeight.Negative) / 10 * 5
	}
	if clauses.TotalWeight.Positive > 0 {
		score += float64(clauses.TotalWeight.Positive) * 2
	}

	extraPenalties := map[string]float64{
		clause.TypeDataSelling:             15,
		clause.TypeMandatoryArbitration:    10,
		clause.TypeSensitiveDataCollection: 12,
		clause.TypeInternationalTransfer:   8,
	}
	for clauseType, penalty := range extraPenalties {
		if detection, ok := clauses.DetectedClauses[clauseType]; ok && detection.Detected {
			score -= penalty
		}
	}

	return score
}

func (s *scorer) applyDocumentPenalties(score float64, result *nlp.Result, meta policy.DocumentMeta) float64 {
	if result.Stats.WordCount > veryLongWords {
		score += penaltyVeryLong
	}
	if hasVagueLanguage(result.Keywords) {
		score += penaltyVagueLanguage
	}
	if meta.HardToFind {
		score += penaltyHardToFind
	}
	if !meta.HasContactInfo {
		score += penaltyNoContactInfo
	}
	if meta.LastUpdated != "" && s.isOutdated(meta.LastUpdated) {
		score += penaltyOutdated
	}
	return score
}

func (s *scorer) applyReadabilityBonus(score float64, readability nlp.Readability) float64 {
	if readability.Score >= clearLanguageFleschMin {
		score *= multiplierClearLanguage
	}
	if readability.Score < opaqueLanguageFleschMax {
		score -= 10
	}
	return score
}

// vagueTerms are hedging words whose overrepresentation among the top
// keywords suggests deliberately imprecise drafting.
var vagueTerms = map[string]struct{}{
	"may": {}, "might": {}, "could": {}, "possible": {}, "sometimes": {}, "generally": {},
}

func hasVagueLanguage(keywords []nlp.Keyword) bool {
	count := 0
	for _, k := range keywords {
		if _, ok := vagueTerms[strings.ToLower(k.Word)]; ok {
			count++
		}
	}
	return count > 5
}

// isOutdated reports whether the last-updated date is more than two years
// ago.  Dates are accepted in RFC 3339 or plain YYYY-MM-DD form; anything
// unparseable is treated as current rather than stale.
func (s *scorer) isOutdated(lastUpdated string) bool {
	date, err := time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		date, err = time.Parse("2006-01-02", lastUpdated)
	}
	if err != nil {
		return false
	}
	return date.Before(s.now().Add(-outdatedAfter))
}

func (s *scorer) calculateConfidence(input Input) float64 {
	confidence := 0.0

	if input.DocumentMeta.IsComplete {
		confidence += 0.3
	} else {
		confidence += 0.1
	}
	if input.Clauses != nil && input.Clauses.ClauseCount > 0 {
		confidence += 0.3
	} else {
		confidence += 0.1
	}
	if input.NLP.Stats.WordCount > 500 {
		confidence += 0.2
	} else {
		confidence += 0.1
	}
	if input.DocumentMeta.HasContactInfo {
		confidence += 0.2
	} else {
		confidence += 0.1
	}

	return math.Min(1, confidence)
}

func (s *scorer) recommendations(score int, clauses *clause.Result) []string {
	var recommendations []string

	if score < 70 {
		recommendations = append(recommendations, "⚠️ Lisez attentivement avant d'accepter")
	}
	if score < 40 {
		recommendations = append(recommendations, "🔴 Envisagez d'utiliser ce service avec précaution")
	}

	detected := func(clauseType string) bool {
		if clauses == nil {
			return false
		}
		d, ok := clauses.DetectedClauses[clauseType]
		return ok && d.Detected
	}

	if detected(clause.TypeDataSelling) {
		recommendations = append(recommendations, "⚠️ Vos données peuvent être vendues - vérifiez les options de désactivation")
	}
	if detected(clause.TypeInternationalTransfer) {
		recommendations = append(recommendations, "🌍 Transfert de données hors UE - assurez-vous des garanties RGPD")
	}
	if detected(clause.TypeSensitiveDataCollection) {
		recommendations = append(recommendations, "⚕️ Collecte de données sensibles - vérifiez la nécessité")
	}
	if detected(clause.TypeUserRights) {
		recommendations = append(recommendations, "✓ Vos droits sont mentionnés - n'hésitez pas à les exercer")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "✓ Politique globalement transparente")
	}

	return recommendations
}

//Personal.AI order the ending
