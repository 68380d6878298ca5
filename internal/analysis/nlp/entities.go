package nlp

import "regexp"

// maxEntitiesPerKind caps each entity list to keep results compact.
const maxEntitiesPerKind = 10

// Entities groups the named entities recognized in a document.  Recognition
// is pattern-based; it favors precision on the formats legal documents
// actually use over linguistic completeness.
type Entities struct {
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Amounts       []string `json:"amounts"`
	Emails        []string `json:"emails"`
	PhoneNumbers  []string `json:"phone_numbers"`
}

var (
	reOrgSuffix  = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Inc|Corp|Ltd|LLC|GmbH|SA|SAS)\.?`)
	reOrgAcronym = regexp.MustCompile(`[A-Z][A-Z]+(?:\s+[A-Z]+)*`)

	reDateNumeric  = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
	reDateISO      = regexp.MustCompile(`\d{4}[/\-]\d{1,2}[/\-]\d{1,2}`)
	reDateLongForm = regexp.MustCompile(`(?i)(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`)

	reAmount      = regexp.MustCompile(`[$€£]\s*\d+(?:[,.]\d+)*(?:\.\d{2})?`)
	reEntityEmail = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	rePhone       = regexp.MustCompile(`(?:\+\d{1,3})?\s*\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
)

// ExtractEntities scans the text for organizations, dates, monetary amounts,
// email addresses, and phone numbers.  Each list is deduplicated in order of
// first occurrence and capped at ten entries.
func ExtractEntities(text string) Entities {
	var orgs []string
	for _, m := range reOrgSuffix.FindAllString(text, -1) {
		orgs = append(orgs, m)
	}
	for _, m := range reOrgAcronym.FindAllString(text, -1) {
		if len(m) > 2 {
			orgs = append(orgs, m)
		}
	}

	var dates []string
	dates = append(dates, reDateNumeric.FindAllString(text, -1)...)
	dates = append(dates, reDateISO.FindAllString(text, -1)...)
	dates = append(dates, reDateLongForm.FindAllString(text, -1)...)

	return Entities{
		Organizations: dedupeCapped(orgs),
		Dates:         dedupeCapped(dates),
		Amounts:       dedupeCapped(reAmount.FindAllString(text, -1)),
		Emails:        dedupeCapped(reEntityEmail.FindAllString(text, -1)),
		PhoneNumbers:  dedupeCapped(rePhone.FindAllString(text, -1)),
	}
}

func dedupeCapped(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == maxEntitiesPerKind {
			break
		}
	}
	return out
}

//Personal.AI order the ending
