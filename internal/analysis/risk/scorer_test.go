package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/analysis/nlp"
	"github.com/turtacn/PolicyLens/pkg/errors"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

func emptyClauses() *clause.Result {
	return &clause.Result{DetectedClauses: map[string]clause.Detection{}}
}

func userRightsOnly() *clause.Result {
	return &clause.Result{
		DetectedClauses: map[string]clause.Detection{
			clause.TypeUserRights: {
				Detected:   true,
				Type:       clause.TypeUserRights,
				Weight:     -5,
				Confidence: 0.4,
				Summary:    clause.SummaryFor(clause.TypeUserRights),
			},
		},
		TotalWeight: clause.WeightTotals{Positive: 5},
		ClauseCount: 1,
	}
}

func TestScore_TransparentDocument(t *testing.T) {
	s := NewScorer(nil)

	result, err := s.Score(Input{
		NLP: &nlp.Result{
			Readability: nlp.Readability{Score: 75},
			Stats:       nlp.Statistics{WordCount: 1200},
		},
		Clauses: emptyClauses(),
		DocumentMeta: policy.DocumentMeta{
			HasPrivacyPolicy: true,
			HasCookiePolicy:  true,
			HasContactInfo:   true,
			WordCount:        1200,
		},
		PageInfo: policy.PageInfo{EasyToFind: true},
	})
	require.NoError(t, err)

	// 50 * 1.1 * 1.05 * 1.1 * 1.05 * 1.15 rounds to 77.
	assert.Equal(t, 77, result.Score)
	assert.Equal(t, LevelLow, result.RiskLevel.Level)
	assert.Greater(t, result.Score, 50)
}

func TestScore_SellingPolicyEndToEnd(t *testing.T) {
	engine := nlp.NewEngine(nil)
	detector := clause.NewDetector(nil)
	s := NewScorer(nil)

	text := "We may sell your personal information to third party partners."
	nlpResult, err := engine.Analyze(text, "en")
	require.NoError(t, err)

	clauses := detector.DetectAll(nlpResult.CleanText, nlpResult.AllSentences)
	require.Contains(t, clauses.DetectedClauses, clause.TypeDataSelling)
	require.Contains(t, clauses.DetectedClauses, clause.TypeThirdPartySharing)
	assert.Equal(t, 18, clauses.TotalWeight.Negative)

	result, err := s.Score(Input{NLP: nlpResult, Clauses: clauses})
	require.NoError(t, err)

	// 50 * 1.1 (short), -9 aggregate weight, -15 selling, -5 no contact.
	assert.Equal(t, 26, result.Score)
	assert.Equal(t, LevelHigh, result.RiskLevel.Level)
}

func TestScore_UserRightsBonus(t *testing.T) {
	s := NewScorer(nil)

	base := Input{
		NLP: &nlp.Result{Readability: nlp.Readability{Score: 50}},
	}

	withoutRights := base
	withoutRights.Clauses = emptyClauses()
	plain, err := s.Score(withoutRights)
	require.NoError(t, err)

	withRights := base
	withRights.Clauses = userRightsOnly()
	boosted, err := s.Score(withRights)
	require.NoError(t, err)

	assert.Equal(t, 10, boosted.Score-plain.Score)
}

func TestScore_UserRightsRecommendationOnly(t *testing.T) {
	s := NewScorer(nil)

	result, err := s.Score(Input{
		NLP: &nlp.Result{
			Readability: nlp.Readability{Score: 50},
			Stats:       nlp.Statistics{WordCount: 1200},
		},
		Clauses: userRightsOnly(),
		DocumentMeta: policy.DocumentMeta{
			HasPrivacyPolicy: true,
			HasCookiePolicy:  true,
			HasContactInfo:   true,
			WordCount:        1200,
		},
		PageInfo: policy.PageInfo{EasyToFind: true},
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, result.Score, 70)
	assert.Equal(t, []string{"✓ Vos droits sont mentionnés - n'hésitez pas à les exercer"}, result.Recommendations)
}

func TestScore_NilNLP(t *testing.T) {
	s := NewScorer(nil)

	_, err := s.Score(Input{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAnalysisFailed, errors.GetCode(err))
}

func TestScore_OutdatedPolicy(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	s := NewScorer(nil, WithClock(now))

	input := func(lastUpdated string) Input {
		return Input{
			NLP:          &nlp.Result{Readability: nlp.Readability{Score: 50}},
			Clauses:      emptyClauses(),
			DocumentMeta: policy.DocumentMeta{HasContactInfo: true, LastUpdated: lastUpdated},
		}
	}

	fresh, err := s.Score(input("2025-06-01"))
	require.NoError(t, err)

	stale, err := s.Score(input("2022-06-01"))
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.Score-stale.Score)

	// Unparseable dates never count as stale.
	malformed, err := s.Score(input("last summer"))
	require.NoError(t, err)
	assert.Equal(t, fresh.Score, malformed.Score)
}

func TestScore_VagueLanguagePenalty(t *testing.T) {
	s := NewScorer(nil)

	vague := []nlp.Keyword{
		{Word: "may"}, {Word: "might"}, {Word: "could"},
		{Word: "possible"}, {Word: "sometimes"}, {Word: "generally"},
	}

	clear, err := s.Score(Input{
		NLP:          &nlp.Result{Readability: nlp.Readability{Score: 50}},
		Clauses:      emptyClauses(),
		DocumentMeta: policy.DocumentMeta{HasContactInfo: true},
	})
	require.NoError(t, err)

	hedged, err := s.Score(Input{
		NLP:          &nlp.Result{Readability: nlp.Readability{Score: 50}, Keywords: vague},
		Clauses:      emptyClauses(),
		DocumentMeta: policy.DocumentMeta{HasContactInfo: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, clear.Score-hedged.Score)
}

func TestScore_Confidence(t *testing.T) {
	s := NewScorer(nil)

	weak, err := s.Score(Input{
		NLP:     &nlp.Result{Readability: nlp.Readability{Score: 50}},
		Clauses: emptyClauses(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, weak.Confidence, 0.0001)

	strong, err := s.Score(Input{
		NLP: &nlp.Result{
			Readability: nlp.Readability{Score: 50},
			Stats:       nlp.Statistics{WordCount: 800},
		},
		Clauses: userRightsOnly(),
		DocumentMeta: policy.DocumentMeta{
			IsComplete:     true,
			HasContactInfo: true,
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, strong.Confidence, 0.0001)
}

func TestScore_Breakdown(t *testing.T) {
	s := NewScorer(nil)

	result, err := s.Score(Input{
		NLP:     &nlp.Result{Readability: nlp.Readability{Score: 75}},
		Clauses: userRightsOnly(),
		DocumentMeta: policy.DocumentMeta{
			HasPrivacyPolicy: true,
			HasContactInfo:   true,
			IsOutdated:       true,
		},
	})
	require.NoError(t, err)

	b := result.Breakdown
	assert.Equal(t, 50, b.BaseScore)
	require.Len(t, b.Adjustments.Clauses, 1)
	assert.Equal(t, "positive", b.Adjustments.Clauses[0].Impact)
	assert.Equal(t, 5, b.Adjustments.Clauses[0].Weight)
	assert.Equal(t, 15, b.Adjustments.Readability.Impact)
	assert.Len(t, b.Adjustments.Metadata, 3)
}

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		score int
		level string
	}{
		{100, LevelLow},
		{70, LevelLow},
		{69, LevelMedium},
		{40, LevelMedium},
		{39, LevelHigh},
		{0, LevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, DetermineLevel(tt.score).Level, "score %d", tt.score)
	}
}

func TestCompareWithMarket(t *testing.T) {
	s := NewScorer(nil)

	better := s.CompareWithMarket(80)
	assert.Equal(t, 25, better.Difference)
	assert.Equal(t, 85, better.Percentile)
	assert.Equal(t, "Mieux que la moyenne", better.Comparison)

	worse := s.CompareWithMarket(30)
	assert.Equal(t, "Moins bien que la moyenne", worse.Comparison)
	assert.Equal(t, 15, worse.Percentile)

	average := s.CompareWithMarket(55)
	assert.Equal(t, "Dans la moyenne", average.Comparison)
}

// Repeated runs over the same document must agree field for field; a map
// iteration sneaking into the catalog sweep, the breakdown, or the report
// would surface here as a flaky diff.
func TestPipeline_DeterministicAcrossRuns(t *testing.T) {
	const text = `We may sell your personal data to third parties and advertising partners.
Your information will be shared with our affiliates and service providers.
You have the right to access, delete, and export your personal information.
We retain your data for a period of 24 months and cannot guarantee deletions.
Disputes are resolved through binding arbitration and you waive any class action.
This service uses Google Analytics and Stripe and may transfer data internationally.`

	engine := nlp.NewEngine(nil)
	detector := clause.NewDetector(nil)
	scorer := NewScorer(nil)

	run := func() (*nlp.Result, *clause.Result, *Score) {
		nr, err := engine.Analyze(text, "")
		require.NoError(t, err)
		cr := detector.DetectAll(nr.CleanText, nr.AllSentences)
		score, err := scorer.Score(Input{
			NLP:          nr,
			Clauses:      cr,
			DocumentMeta: policy.DocumentMeta{WordCount: nr.Stats.WordCount, HasContactInfo: true},
			PageInfo:     policy.PageInfo{EasyToFind: true},
		})
		require.NoError(t, err)
		return nr, cr, score
	}

	firstNLP, firstClauses, firstScore := run()
	secondNLP, secondClauses, secondScore := run()

	firstNLP.ProcessedAt, secondNLP.ProcessedAt = time.Time{}, time.Time{}
	assert.Equal(t, firstNLP, secondNLP)
	assert.Equal(t, firstClauses, secondClauses)
	assert.Equal(t, firstScore, secondScore)
}

//Personal.AI order the ending
