// Package policy defines the externally supplied input records for the
// PolicyLens analysis pipeline.  These are plain data carriers produced by
// collaborators outside the core (a page-extraction component, a browser
// extension, a crawler); the pipeline trusts their facts as given and
// performs only structural validation.
package policy

// MaxDocumentBytes is the hard ceiling on document size.  Longer inputs are
// silently truncated before processing; oversize is never an error.
const MaxDocumentBytes = 500000

// Document is the raw legal document submitted for analysis.
type Document struct {
	// RawText is the plain-text body of the document.  It may still contain
	// stray HTML fragments; the normalizer strips those.
	RawText string `json:"raw_text"`

	// LanguageHint is an optional ISO 639-1 code ("en", "fr", …).  When empty
	// the language detector decides.
	LanguageHint string `json:"language_hint,omitempty"`
}

// Truncate returns the document text capped at MaxDocumentBytes.  The cut is
// backed off to the previous rune boundary so a multi-byte sequence is never
// split.
func (d Document) Truncate() string {
	return TruncateText(d.RawText, MaxDocumentBytes)
}

// TruncateText caps s at max bytes, respecting UTF-8 rune boundaries.
func TruncateText(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}

// DocumentMeta carries caller-supplied facts about the document and the site
// it was found on.  None of these fields are derived by the core.
type DocumentMeta struct {
	HasPrivacyPolicy bool `json:"has_privacy_policy"`
	HasCookiePolicy  bool `json:"has_cookie_policy"`
	HasContactInfo   bool `json:"has_contact_info"`

	// WordCount is the caller's own word count of the page (pre-analysis);
	// the scorer uses it for the short/long document adjustments.
	WordCount int `json:"word_count"`

	// IsComplete reports whether the caller believes it captured the whole
	// document (as opposed to a partially rendered page).
	IsComplete bool `json:"is_complete"`

	// HardToFind reports that the policy link was buried or absent from the
	// usual header/footer locations.
	HardToFind bool `json:"hard_to_find"`

	// IsOutdated is the caller's own staleness flag, surfaced in the score
	// breakdown alongside the LastUpdated-derived penalty.
	IsOutdated bool `json:"is_outdated"`

	// LastUpdated is the document's self-declared revision date, RFC 3339 or
	// "2006-01-02".  Unparseable values are treated as "not outdated".
	LastUpdated string `json:"last_updated,omitempty"`
}

// PageInfo describes the page the document was extracted from.
type PageInfo struct {
	// EasyToFind reports that the policy was linked from a visible
	// header/footer location.
	EasyToFind bool `json:"easy_to_find"`

	// URL is the page address, used as the cache and history key.
	URL string `json:"url,omitempty"`
}

//Personal.AI order the ending
