package nlp

import (
	"math"
	"strings"
)

// Difficulty classes for the readability score.
const (
	DifficultyEasy          = "easy"
	DifficultyMedium        = "medium"
	DifficultyDifficult     = "difficult"
	DifficultyVeryDifficult = "very_difficult"
)

// Readability holds a Flesch Reading Ease score adapted for legal prose,
// clamped to [0, 100], along with the averages it was computed from.
type Readability struct {
	Score               int     `json:"score"`
	Difficulty          string  `json:"difficulty"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`
}

// CalculateReadability applies the Flesch formula
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// to the tokenized document and classifies the clamped result.
func CalculateReadability(sentences, tokens []string) Readability {
	totalWords := len(tokens)
	totalSentences := len(sentences)

	totalSyllables := 0
	for _, word := range tokens {
		totalSyllables += EstimateSyllables(word)
	}

	avgWords := float64(totalWords) / math.Max(float64(totalSentences), 1)
	avgSyllables := float64(totalSyllables) / math.Max(float64(totalWords), 1)

	score := 206.835 - 1.015*avgWords - 84.6*avgSyllables
	score = math.Max(0, math.Min(100, score))

	var difficulty string
	switch {
	case score >= 70:
		difficulty = DifficultyEasy
	case score >= 50:
		difficulty = DifficultyMedium
	case score >= 30:
		difficulty = DifficultyDifficult
	default:
		difficulty = DifficultyVeryDifficult
	}

	return Readability{
		Score:               int(math.Round(score)),
		Difficulty:          difficulty,
		AvgWordsPerSentence: math.Round(avgWords*10) / 10,
		AvgSyllablesPerWord: math.Round(avgSyllables*10) / 10,
	}
}

// EstimateSyllables approximates the syllable count of a word by counting
// vowel groups, with adjustments for silent and consonant-le endings.  Words
// of three characters or fewer count as one syllable.
func EstimateSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}

	count := 0
	inGroup := false
	for _, r := range word {
		if isVowel(r) {
			if !inGroup {
				count++
				inGroup = true
			}
		} else {
			inGroup = false
		}
	}
	if count == 0 {
		count = 1
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if strings.HasSuffix(word, "le") && len(word) > 2 {
		count++
	}

	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

//Personal.AI order the ending
