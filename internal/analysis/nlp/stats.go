package nlp

import "math"

// Statistics summarizes the size and lexical variety of a document.
type Statistics struct {
	WordCount           int     `json:"wordCount"`
	SentenceCount       int     `json:"sentenceCount"`
	UniqueWordCount     int     `json:"uniqueWordCount"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	VocabularyRichness  float64 `json:"vocabularyRichness"`
}

// CalculateStats derives document statistics from the token and sentence
// lists.  Division guards keep the ratios finite for degenerate inputs.
func CalculateStats(tokens, sentences []string) Statistics {
	wordCount := len(tokens)
	sentenceCount := len(sentences)

	unique := make(map[string]struct{}, wordCount)
	for _, tok := range tokens {
		unique[tok] = struct{}{}
	}

	avgWords := float64(wordCount) / math.Max(float64(sentenceCount), 1)
	richness := float64(len(unique)) / math.Max(float64(wordCount), 1)

	return Statistics{
		WordCount:           wordCount,
		SentenceCount:       sentenceCount,
		UniqueWordCount:     len(unique),
		AvgWordsPerSentence: math.Round(avgWords*10) / 10,
		VocabularyRichness:  math.Round(richness*100) / 100,
	}
}

//Personal.AI order the ending
