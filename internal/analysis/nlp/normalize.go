package nlp

import (
	"regexp"
	"strings"
)

// Normalization strips everything that is not document prose: markup left
// over from page extraction, URLs, and email addresses.  It never fails; the
// worst input yields an empty string.
var (
	reHTMLTag    = regexp.MustCompile(`<[^>]*>`)
	reHTMLEntity = regexp.MustCompile(`(?i)&[a-z]+;`)
	reURL        = regexp.MustCompile(`https?://\S+`)
	reEmail      = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize removes HTML tags and entities, URLs, and email addresses, then
// collapses whitespace runs to single spaces and trims the result.
func Normalize(text string) string {
	text = reHTMLTag.ReplaceAllString(text, " ")
	text = reHTMLEntity.ReplaceAllString(text, " ")
	text = reURL.ReplaceAllString(text, " ")
	text = reEmail.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

//Personal.AI order the ending
