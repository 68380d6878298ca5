package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/PolicyLens/pkg/errors"
)

func TestCalculateStats(t *testing.T) {
	tokens := []string{"data", "data", "privacy", "data", "privacy", "rights"}
	sentences := []string{
		"We collect data about you when you use the service",
		"You have rights over the data we hold about you",
	}

	stats := CalculateStats(tokens, sentences)
	assert.Equal(t, 6, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.Equal(t, 3, stats.UniqueWordCount)
	assert.InDelta(t, 3.0, stats.AvgWordsPerSentence, 0.001)
	assert.InDelta(t, 0.5, stats.VocabularyRichness, 0.001)
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := CalculateStats(nil, nil)
	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.SentenceCount)
	assert.Zero(t, stats.AvgWordsPerSentence)
	assert.Zero(t, stats.VocabularyRichness)
}

func TestExtractKeywords(t *testing.T) {
	tokens := []string{"data", "data", "privacy", "data", "privacy", "rights"}

	keywords := ExtractKeywords(tokens, 2)
	require.Len(t, keywords, 2)
	assert.Equal(t, "data", keywords[0].Word)
	assert.Equal(t, 3, keywords[0].Count)
	assert.InDelta(t, 0.5, keywords[0].Relevance, 0.001)
	assert.Equal(t, "privacy", keywords[1].Word)
	assert.Equal(t, 2, keywords[1].Count)
}

func TestExtractKeywords_TieBreaksByFirstOccurrence(t *testing.T) {
	tokens := []string{"beta", "alpha", "beta", "alpha"}

	keywords := ExtractKeywords(tokens, 2)
	require.Len(t, keywords, 2)
	assert.Equal(t, "beta", keywords[0].Word)
	assert.Equal(t, "alpha", keywords[1].Word)
}

func TestExtractEntities(t *testing.T) {
	text := "Acme Corp. was founded on January 15, 2020. " +
		"Contact support@example.com or +1 (555) 123-4567. " +
		"The GDPR fine was $9.99 per record."

	entities := ExtractEntities(text)
	assert.Contains(t, entities.Organizations, "Acme Corp.")
	assert.Contains(t, entities.Organizations, "GDPR")
	assert.Contains(t, entities.Dates, "January 15, 2020")
	assert.Contains(t, entities.Emails, "support@example.com")
	assert.Contains(t, entities.Amounts, "$9.99")
	require.NotEmpty(t, entities.PhoneNumbers)
}

func TestExtractEntities_DedupesAndCaps(t *testing.T) {
	text := strings.Repeat("Mail a@example.com b@example.com c@example.com "+
		"d@example.com e@example.com f@example.com g@example.com "+
		"h@example.com i@example.com j@example.com k@example.com ", 3)

	entities := ExtractEntities(text)
	assert.Len(t, entities.Emails, maxEntitiesPerKind)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "english",
			text:     "We are committed to protecting the data that you share with us and the rights that come with it",
			expected: "en",
		},
		{
			name:     "french",
			text:     "Nous collectons vos données pour que le service fonctionne dans de bonnes conditions et que vous soyez informés",
			expected: "fr",
		},
		{
			name:     "empty falls back to english",
			text:     "",
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.text))
		})
	}
}

func TestEngine_Analyze(t *testing.T) {
	e := NewEngine(nil)

	text := "We collect personal data when you register for the service. " +
		"Your information may be shared with trusted partners for processing. " +
		"You can request deletion of your account data at any time."

	result, err := e.Analyze(text, "")
	require.NoError(t, err)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, 3, result.Stats.SentenceCount)
	assert.NotEmpty(t, result.Keywords)
	assert.False(t, result.Truncated)
	assert.False(t, result.ProcessedAt.IsZero())
	assert.Len(t, result.AllSentences, 3)
}

func TestEngine_Analyze_EmptyDocument(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.Analyze("   \n\t  ", "")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDocumentEmpty, errors.GetCode(err))
}

func TestEngine_Analyze_TruncatesOversizedInput(t *testing.T) {
	e := NewEngine(nil, WithMaxDocumentBytes(64))

	text := strings.Repeat("We collect data about your usage. ", 10)
	result, err := e.Analyze(text, "en")
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.LessOrEqual(t, len(result.CleanText), 64)
}

func TestEngine_Analyze_LanguageHintWins(t *testing.T) {
	e := NewEngine(nil)

	result, err := e.Analyze("We collect the data that you share with us every day", "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", result.Language)
}

//Personal.AI order the ending
