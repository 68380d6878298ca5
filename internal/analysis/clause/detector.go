package clause

import (
	"math"
	"regexp"
	"strings"

	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
)

// maxExampleSentences caps how many matched sentences a detection keeps.
const maxExampleSentences = 3

// Detection is the outcome for a single clause category.
type Detection struct {
	Detected   bool     `json:"detected"`
	Type       string   `json:"type"`
	Weight     int      `json:"weight"`
	Confidence float64  `json:"confidence"`
	MatchCount int      `json:"matchCount,omitempty"`
	Sentences  []string `json:"sentences,omitempty"`
	Summary    string   `json:"summary,omitempty"`
}

// WeightTotals accumulates the absolute weights of detected clauses, split
// by whether they count against or in favor of the document.
type WeightTotals struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// Result aggregates the detections across the whole catalog.
type Result struct {
	DetectedClauses      map[string]Detection `json:"detectedClauses"`
	TotalWeight          WeightTotals         `json:"totalWeight"`
	HighlightedSentences []string             `json:"highlightedSentences"`
	ClauseCount          int                  `json:"clauseCount"`
}

// Detector scans normalized document text for sensitive clauses.
type Detector interface {
	// DetectAll runs every catalog definition against the text.  The
	// sentence list is used to attach example sentences to each
	// detection; every candidate sentence is searched, short ones
	// included.
	DetectAll(text string, sentences []string) *Result

	// Report groups a detection result by severity.
	Report(result *Result) *Report

	// AnalyzePermissions lists the device capabilities the text mentions.
	AnalyzePermissions(text string) []string

	// DetectThirdParties lists the known vendor services named in the
	// text.
	DetectThirdParties(text string) []string

	// AnalyzeRetention looks for an explicit data retention duration.
	AnalyzeRetention(text string) RetentionInfo
}

type detector struct {
	logger   logging.Logger
	catalog  []Definition
	keywords map[string][]*regexp.Regexp
}

// NewDetector builds a detector over the built-in catalog.  Keyword patterns
// are compiled once up front.  A nil logger is replaced with a no-op logger.
func NewDetector(logger logging.Logger) Detector {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	keywords := make(map[string][]*regexp.Regexp, len(catalog))
	for _, def := range catalog {
		compiled := make([]*regexp.Regexp, 0, len(def.Keywords))
		for _, kw := range def.Keywords {
			compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		keywords[def.Type] = compiled
	}

	return &detector{
		logger:   logger.Named("clause"),
		catalog:  catalog,
		keywords: keywords,
	}
}

func (d *detector) DetectAll(text string, sentences []string) *Result {
	result := &Result{
		DetectedClauses: make(map[string]Detection, len(d.catalog)),
	}

	for _, def := range d.catalog {
		detection := d.detectClause(text, sentences, def)
		if !detection.Detected {
			continue
		}

		result.DetectedClauses[def.Type] = detection
		if def.Weight > 0 {
			result.TotalWeight.Negative += def.Weight
		} else {
			result.TotalWeight.Positive += -def.Weight
		}
		result.HighlightedSentences = append(result.HighlightedSentences, detection.Sentences...)
	}

	result.HighlightedSentences = dedupe(result.HighlightedSentences)
	result.ClauseCount = len(result.DetectedClauses)

	d.logger.Debug("clause detection finished",
		logging.Int("clause_count", result.ClauseCount),
		logging.Int("negative_weight", result.TotalWeight.Negative),
		logging.Int("positive_weight", result.TotalWeight.Positive))

	return result
}

func (d *detector) detectClause(text string, sentences []string, def Definition) Detection {
	keywordMatches := d.findKeywordMatches(text, def.Type)
	patternMatches := findPatternMatches(text, def.Patterns)

	if len(keywordMatches)+len(patternMatches) == 0 {
		return Detection{Type: def.Type, Weight: def.Weight}
	}

	var matched []string
	for _, m := range append(keywordMatches, patternMatches...) {
		sentence, ok := findContainingSentence(m, sentences)
		if !ok {
			continue
		}
		if !contains(matched, sentence) {
			matched = append(matched, sentence)
		}
	}

	examples := matched
	if len(examples) > maxExampleSentences {
		examples = examples[:maxExampleSentences]
	}

	return Detection{
		Detected:   true,
		Type:       def.Type,
		Weight:     def.Weight,
		Confidence: calculateConfidence(len(keywordMatches), len(patternMatches), len(matched)),
		MatchCount: len(keywordMatches) + len(patternMatches),
		Sentences:  examples,
		Summary:    SummaryFor(def.Type),
	}
}

func (d *detector) findKeywordMatches(text, clauseType string) []string {
	var matches []string
	for _, re := range d.keywords[clauseType] {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	return matches
}

// findPatternMatches records at most one hit per pattern, so a phrase
// repeated throughout a long document does not inflate the match count.
func findPatternMatches(text string, patterns []*regexp.Regexp) []string {
	var matches []string
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			matches = append(matches, m)
		}
	}
	return matches
}

// findContainingSentence returns the first sentence containing the match,
// compared case-insensitively.
func findContainingSentence(match string, sentences []string) (string, bool) {
	lowered := strings.ToLower(match)
	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), lowered) {
			return sentence, true
		}
	}
	return "", false
}

// calculateConfidence weighs pattern hits above keyword hits above sentence
// coverage and normalizes the sum to [0, 1].
func calculateConfidence(keywordCount, patternCount, sentenceCount int) float64 {
	score := float64(patternCount)*0.5 + float64(keywordCount)*0.3 + float64(sentenceCount)*0.2
	return math.Min(1, score/5)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

//Personal.AI order the ending
