package nlp

import "sort"

// Keyword is a frequent term with its raw count and its relevance relative
// to the document length.
type Keyword struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Relevance float64 `json:"relevance"`
}

// ExtractKeywords returns the topN most frequent tokens.  Ties are broken by
// first occurrence in the document, so the output is stable for a given
// input.
func ExtractKeywords(tokens []string, topN int) []Keyword {
	frequency := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		if _, ok := frequency[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		frequency[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		fa, fb := frequency[order[a]], frequency[order[b]]
		if fa != fb {
			return fa > fb
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if topN > len(order) {
		topN = len(order)
	}
	if topN < 0 {
		topN = 0
	}

	keywords := make([]Keyword, 0, topN)
	for _, word := range order[:topN] {
		keywords = append(keywords, Keyword{
			Word:      word,
			Count:     frequency[word],
			Relevance: float64(frequency[word]) / float64(len(tokens)),
		})
	}
	return keywords
}

//Personal.AI order the ending
