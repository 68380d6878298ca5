package clause

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sellingSentence = "We may sell your data to advertising networks and partners"
const rightsSentence = "You have the right to access and delete your personal data at any time"

func policyText() (string, []string) {
	sentences := []string{
		sellingSentence,
		rightsSentence,
		"Short heading",
	}
	return sellingSentence + ". " + rightsSentence + ". Short heading.", sentences
}

func TestDetectAll(t *testing.T) {
	d := NewDetector(nil)
	text, sentences := policyText()

	result := d.DetectAll(text, sentences)
	require.NotNil(t, result)

	selling, ok := result.DetectedClauses[TypeDataSelling]
	require.True(t, ok)
	assert.True(t, selling.Detected)
	assert.Equal(t, 10, selling.Weight)
	assert.Greater(t, selling.Confidence, 0.0)
	assert.LessOrEqual(t, selling.Confidence, 1.0)
	assert.Contains(t, selling.Sentences, sellingSentence)
	assert.Equal(t, SummaryFor(TypeDataSelling), selling.Summary)

	rights, ok := result.DetectedClauses[TypeUserRights]
	require.True(t, ok)
	assert.True(t, rights.Detected)
	assert.Equal(t, -5, rights.Weight)

	assert.Equal(t, len(result.DetectedClauses), result.ClauseCount)
	assert.Equal(t, 5, result.TotalWeight.Positive)
	assert.GreaterOrEqual(t, result.TotalWeight.Negative, 10)
}

func TestDetectAll_NothingDetected(t *testing.T) {
	d := NewDetector(nil)

	result := d.DetectAll("The weather was pleasant all week", []string{"The weather was pleasant all week"})
	assert.Empty(t, result.DetectedClauses)
	assert.Zero(t, result.ClauseCount)
	assert.Zero(t, result.TotalWeight.Negative)
	assert.Zero(t, result.TotalWeight.Positive)
	assert.Empty(t, result.HighlightedSentences)
}

func TestDetectAll_DeduplicatesHighlights(t *testing.T) {
	d := NewDetector(nil)

	// One sentence triggering two clause types should appear once in the
	// highlights.
	sentence := "We sell your data and use targeted advertising to fund the service"
	result := d.DetectAll(sentence, []string{sentence})

	require.Contains(t, result.DetectedClauses, TypeDataSelling)
	require.Contains(t, result.DetectedClauses, TypeTargetedAdvertising)
	assert.Equal(t, []string{sentence}, result.HighlightedSentences)
}

func TestDetectAll_MatchesShortSentences(t *testing.T) {
	d := NewDetector(nil)

	// Example sentences come from every candidate, including ones shorter
	// than the prose threshold used elsewhere.
	short := "GPS tracking is enabled"
	result := d.DetectAll(short, []string{short})

	geo, ok := result.DetectedClauses[TypeGeolocation]
	require.True(t, ok)
	assert.Contains(t, geo.Sentences, short)
}

func TestDetectAll_CapsExampleSentences(t *testing.T) {
	d := NewDetector(nil)

	sentences := []string{
		"We retain logs for six months after closure",
		"Backups are kept for one year in cold storage",
		"Chat transcripts are stored until you delete them",
		"Billing records follow a retention period of ten years",
	}
	text := sentences[0] + ". " + sentences[1] + ". " + sentences[2] + ". " + sentences[3] + "."

	result := d.DetectAll(text, sentences)
	retention, ok := result.DetectedClauses[TypeDataRetention]
	require.True(t, ok)
	assert.LessOrEqual(t, len(retention.Sentences), maxExampleSentences)
	assert.Greater(t, retention.MatchCount, len(retention.Sentences))
}

func TestFindPatternMatches_CountsEachPatternOnce(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:mandatory|binding).*arbitration`),
		regexp.MustCompile(`(?i)arbitration.*(?:clause|agreement)`),
	}
	text := "Disputes go to binding arbitration.\nAll claims use binding arbitration."

	matches := findPatternMatches(text, patterns)
	assert.Len(t, matches, 1)
	assert.Contains(t, matches[0], "binding arbitration")
}

func TestCalculateConfidence(t *testing.T) {
	assert.InDelta(t, 0.2, calculateConfidence(1, 1, 1), 0.0001)
	assert.InDelta(t, 1.0, calculateConfidence(10, 10, 10), 0.0001)
	assert.Zero(t, calculateConfidence(0, 0, 0))
}

func TestReport_GroupsBySeverity(t *testing.T) {
	d := NewDetector(nil)
	text, sentences := policyText()

	result := d.DetectAll(text, sentences)
	report := d.Report(result)

	var criticalTypes []string
	for _, item := range report.Critical {
		criticalTypes = append(criticalTypes, item.Type)
	}
	assert.Contains(t, criticalTypes, TypeDataSelling)

	require.NotEmpty(t, report.Positive)
	assert.Equal(t, TypeUserRights, report.Positive[0].Type)

	for _, group := range [][]ReportItem{report.Critical, report.Important, report.Moderate, report.Positive} {
		for _, item := range group {
			assert.LessOrEqual(t, len(item.Examples), maxReportExamples)
			assert.NotEmpty(t, item.Summary)
		}
	}
}

func TestReport_NilResult(t *testing.T) {
	d := NewDetector(nil)
	report := d.Report(nil)
	assert.Empty(t, report.Critical)
	assert.Empty(t, report.Important)
	assert.Empty(t, report.Moderate)
	assert.Empty(t, report.Positive)
}

func TestAnalyzePermissions(t *testing.T) {
	d := NewDetector(nil)

	permissions := d.AnalyzePermissions("We access your camera and microphone, use cookies, and send push notifications")
	assert.Contains(t, permissions, "camera")
	assert.Contains(t, permissions, "microphone")
	assert.Contains(t, permissions, "cookies")
	assert.Contains(t, permissions, "notifications")
	assert.NotContains(t, permissions, "contacts")
}

func TestDetectThirdParties(t *testing.T) {
	d := NewDetector(nil)

	parties := d.DetectThirdParties("We use Google Analytics and Stripe; data is hosted on AWS")
	assert.Equal(t, []string{"Google Analytics", "AWS", "Stripe"}, parties)
}

func TestAnalyzeRetention(t *testing.T) {
	d := NewDetector(nil)

	info := d.AnalyzeRetention("We keep account data for 24 months after deletion")
	assert.True(t, info.Found)
	assert.NotEmpty(t, info.Duration)

	none := d.AnalyzeRetention("We keep data only as long as needed")
	assert.False(t, none.Found)
	assert.Empty(t, none.Duration)
}

//Personal.AI order the ending
