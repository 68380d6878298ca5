package nlp

import (
	"regexp"
	"strings"
)

// MinSentenceLength is the minimum character length for a sentence to be
// considered meaningful prose rather than a heading or list fragment.
const MinSentenceLength = 30

// stopwords holds the merged English and French stopword sets.  Legal
// documents in the supported markets are overwhelmingly in one of these two
// languages, and merging the sets keeps tokenization language-agnostic.
var stopwords = buildStopwords()

var stopwordsEN = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "up", "about", "into", "through", "during",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "should", "could", "may", "might",
	"can", "this", "that", "these", "those", "i", "you", "he", "she", "it",
	"we", "they", "what", "which", "who", "when", "where", "why", "how",
}

var stopwordsFR = []string{
	"le", "la", "les", "un", "une", "des", "de", "du", "et", "ou", "mais",
	"dans", "sur", "à", "pour", "par", "avec", "sans", "sous", "vers",
	"est", "sont", "était", "étaient", "être", "avoir", "a", "avons", "ont",
	"ce", "cette", "ces", "cet", "je", "tu", "il", "elle", "nous", "vous",
	"ils", "elles", "qui", "que", "quoi", "dont", "où", "quand", "comment",
}

func buildStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwordsEN)+len(stopwordsFR))
	for _, w := range stopwordsEN {
		set[w] = struct{}{}
	}
	for _, w := range stopwordsFR {
		set[w] = struct{}{}
	}
	return set
}

var (
	reNonWord       = regexp.MustCompile(`[^\w\s'-]`)
	reTokenSplit    = regexp.MustCompile(`\s+`)
	reSentenceSplit = regexp.MustCompile(`[.!?]+`)
)

// Tokenize lowercases the text, strips punctuation, and returns the tokens
// longer than two characters that are not stopwords.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = reNonWord.ReplaceAllString(text, " ")

	parts := reTokenSplit.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, tok := range parts {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// SplitSentences splits the text on strong punctuation and returns every
// trimmed non-empty fragment, including short headings and list items.
func SplitSentences(text string) []string {
	parts := reSentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
	}
	return sentences
}

// FilterSentences keeps only the sentences at least minLength characters
// long.
func FilterSentences(sentences []string, minLength int) []string {
	kept := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if len(s) >= minLength {
			kept = append(kept, s)
		}
	}
	return kept
}

//Personal.AI order the ending
