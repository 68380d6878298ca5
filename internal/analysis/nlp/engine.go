package nlp

import (
	"strings"
	"time"

	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/pkg/errors"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// Engine analyzes legal document text.  Analysis is pure computation with no
// I/O; the same input always yields the same result apart from the
// timestamp.
type Engine interface {
	// Analyze runs the full pipeline on the document text.  Oversized
	// input is truncated before processing.  The language is detected
	// unless a hint is supplied.
	Analyze(text, languageHint string) (*Result, error)

	// Summarize extracts the most informative sentences from an already
	// segmented document.
	Summarize(sentences []string, maxSentences int) []string

	// DetectLanguage guesses the language code of arbitrary text.
	DetectLanguage(text string) string
}

// Result carries everything the analysis pipeline computed for a document.
// CleanText and AllSentences are intermediate products retained so that
// downstream detectors do not have to recompute them; they are not part of
// the serialized result.
type Result struct {
	Stats       Statistics  `json:"stats"`
	Keywords    []Keyword   `json:"keywords"`
	Readability Readability `json:"readability"`
	Entities    Entities    `json:"entities"`
	Sentences   []string    `json:"sentences"`
	Language    string      `json:"language"`
	Truncated   bool        `json:"truncated,omitempty"`
	ProcessedAt time.Time   `json:"processedAt"`

	CleanText    string   `json:"-"`
	AllSentences []string `json:"-"`
}

type engine struct {
	logger       logging.Logger
	keywordLimit int
	maxBytes     int
}

// Option configures the engine.
type Option func(*engine)

// WithKeywordLimit overrides how many keywords Analyze extracts.
func WithKeywordLimit(n int) Option {
	return func(e *engine) {
		if n > 0 {
			e.keywordLimit = n
		}
	}
}

// WithMaxDocumentBytes overrides the truncation threshold.
func WithMaxDocumentBytes(n int) Option {
	return func(e *engine) {
		if n > 0 {
			e.maxBytes = n
		}
	}
}

// NewEngine builds an analysis engine.  A nil logger is replaced with a
// no-op logger.
func NewEngine(logger logging.Logger, opts ...Option) Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	e := &engine{
		logger:       logger.Named("nlp"),
		keywordLimit: 15,
		maxBytes:     policy.MaxDocumentBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engine) Analyze(text, languageHint string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrCodeDocumentEmpty, "document text is empty")
	}

	truncated := false
	if len(text) > e.maxBytes {
		text = policy.TruncateText(text, e.maxBytes)
		truncated = true
		e.logger.Warn("document truncated before analysis",
			logging.Int("max_bytes", e.maxBytes))
	}

	cleaned := Normalize(text)
	tokens := Tokenize(cleaned)
	allSentences := SplitSentences(cleaned)
	sentences := FilterSentences(allSentences, MinSentenceLength)

	language := languageHint
	if language == "" {
		language = e.DetectLanguage(cleaned)
	}

	result := &Result{
		Stats:       CalculateStats(tokens, sentences),
		Keywords:    ExtractKeywords(tokens, e.keywordLimit),
		Readability: CalculateReadability(sentences, tokens),
		Entities:    ExtractEntities(cleaned),
		Sentences:   sentences,
		Language:    language,
		Truncated:   truncated,
		ProcessedAt: time.Now().UTC(),

		CleanText:    cleaned,
		AllSentences: allSentences,
	}

	e.logger.Debug("document analyzed",
		logging.String("language", language),
		logging.Int("word_count", result.Stats.WordCount),
		logging.Int("sentence_count", result.Stats.SentenceCount),
		logging.Bool("truncated", truncated))

	return result, nil
}

func (e *engine) Summarize(sentences []string, maxSentences int) []string {
	if maxSentences <= 0 {
		maxSentences = MaxSummarySentences
	}
	return GenerateSummary(sentences, maxSentences)
}

func (e *engine) DetectLanguage(text string) string {
	return DetectLanguage(text)
}

//Personal.AI order the ending
