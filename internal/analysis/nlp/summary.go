package nlp

import (
	"sort"
	"strings"
)

// Summary generation parameters.
const (
	MaxSummarySentences = 7
	MaxSentenceLength   = 150
)

// summarySignalWords boost sentences that talk about obligations and data
// handling, which is what a reader skimming a legal document cares about.
var summarySignalWords = []string{
	"must", "will", "may", "collect", "share", "use", "rights", "data", "information",
}

// GenerateSummary picks the maxSentences most informative sentences.  Each
// candidate between 30 and 150 characters is scored on position (earlier is
// better), length (10 to 30 words is ideal), and the presence of signal
// words; the result is ordered by descending score.
func GenerateSummary(sentences []string, maxSentences int) []string {
	valid := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if len(s) >= MinSentenceLength && len(s) <= MaxSentenceLength {
			valid = append(valid, s)
		}
	}

	if len(valid) <= maxSentences {
		return valid
	}

	position := make(map[string]int, len(sentences))
	for i, s := range sentences {
		if _, ok := position[s]; !ok {
			position[s] = i
		}
	}

	type scored struct {
		sentence string
		score    float64
	}

	candidates := make([]scored, 0, len(valid))
	for _, sentence := range valid {
		positionScore := 1 - float64(position[sentence])/float64(len(sentences))

		wordCount := len(strings.Fields(sentence))
		lengthScore := 0.5
		if wordCount > 10 && wordCount < 30 {
			lengthScore = 1
		}

		lowered := strings.ToLower(sentence)
		keywordScore := 0.0
		for _, word := range summarySignalWords {
			if strings.Contains(lowered, word) {
				keywordScore += 0.2
			}
		}

		candidates = append(candidates, scored{
			sentence: sentence,
			score:    positionScore*0.4 + lengthScore*0.3 + keywordScore*0.3,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	summary := make([]string, 0, maxSentences)
	for _, c := range candidates[:maxSentences] {
		summary = append(summary, c.sentence)
	}
	return summary
}

//Personal.AI order the ending
