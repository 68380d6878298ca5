package nlp

import (
	"regexp"
	"strings"
)

// languageSampleSize bounds the text scanned for detection; the first
// kilobyte is plenty for high-frequency function words.
const languageSampleSize = 1000

// languageMarkers lists high-frequency function words per language.  The
// slice is ordered so that tie-breaking is deterministic: on equal marker
// counts the earlier language wins, and English is the overall fallback.
var languageMarkers = []struct {
	code    string
	markers []string
}{
	{"en", []string{"the", "and", "you", "that", "this", "with", "for", "are"}},
	{"fr", []string{"le", "la", "de", "et", "vous", "que", "pour", "dans"}},
	{"de", []string{"der", "die", "das", "und", "sie", "ist", "für", "mit"}},
	{"es", []string{"el", "la", "de", "que", "los", "para", "con", "por"}},
	{"it", []string{"il", "di", "che", "per", "con", "una", "sono", "della"}},
}

var markerPatterns = compileMarkerPatterns()

func compileMarkerPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, lang := range languageMarkers {
		for _, marker := range lang.markers {
			if _, ok := patterns[marker]; !ok {
				patterns[marker] = regexp.MustCompile(`\b` + regexp.QuoteMeta(marker) + `\b`)
			}
		}
	}
	return patterns
}

// DetectLanguage guesses the document language from marker word frequencies
// in the first kilobyte of lowercased text.
func DetectLanguage(text string) string {
	sample := strings.ToLower(text)
	if len(sample) > languageSampleSize {
		sample = sample[:languageSampleSize]
	}

	best := languageMarkers[0].code
	bestScore := -1
	for _, lang := range languageMarkers {
		score := 0
		for _, marker := range lang.markers {
			score += len(markerPatterns[marker].FindAllStringIndex(sample, -1))
		}
		if score > bestScore {
			best = lang.code
			bestScore = score
		}
	}
	return best
}

//Personal.AI order the ending
