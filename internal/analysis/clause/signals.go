package clause

import "regexp"

// permissionPatterns maps device capability names to the vocabulary that
// implies them.  Ordered so output is deterministic.
var permissionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"camera", regexp.MustCompile(`(?i)camera|webcam|photo|image capture`)},
	{"microphone", regexp.MustCompile(`(?i)microphone|audio|voice|recording`)},
	{"location", regexp.MustCompile(`(?i)location|gps|geolocation|position`)},
	{"contacts", regexp.MustCompile(`(?i)contacts|address book|phonebook`)},
	{"storage", regexp.MustCompile(`(?i)files|storage|documents|photos`)},
	{"notifications", regexp.MustCompile(`(?i)notification|push|alert`)},
	{"cookies", regexp.MustCompile(`(?i)cookies|tracking|pixels`)},
	{"clipboard", regexp.MustCompile(`(?i)clipboard|copy|paste`)},
}

func (d *detector) AnalyzePermissions(text string) []string {
	permissions := make([]string, 0, len(permissionPatterns))
	for _, p := range permissionPatterns {
		if p.pattern.MatchString(text) {
			permissions = append(permissions, p.name)
		}
	}
	return permissions
}

// knownServices lists vendors commonly named in privacy policies: analytics,
// advertising, payment, and infrastructure providers.
var knownServices = []string{
	"Google Analytics", "Facebook", "Meta", "Twitter", "Instagram",
	"Amazon", "AWS", "Microsoft", "Azure", "Cloudflare",
	"Stripe", "PayPal", "Mailchimp", "SendGrid", "Intercom",
	"Hotjar", "Mixpanel", "Segment", "Amplitude",
}

var knownServicePatterns = compileServicePatterns()

func compileServicePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(knownServices))
	for _, service := range knownServices {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(service)+`\b`))
	}
	return patterns
}

func (d *detector) DetectThirdParties(text string) []string {
	var parties []string
	for i, re := range knownServicePatterns {
		if re.MatchString(text) {
			parties = append(parties, knownServices[i])
		}
	}
	return parties
}

// RetentionInfo reports whether the document states how long data is kept.
type RetentionInfo struct {
	Found    bool   `json:"found"`
	Duration string `json:"duration,omitempty"`
}

var retentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*(?:day|days|jour|jours)`),
	regexp.MustCompile(`(?i)\d+\s*(?:month|months|mois)`),
	regexp.MustCompile(`(?i)\d+\s*(?:year|years|an|ans|année|années)`),
	regexp.MustCompile(`(?i)(?:for|pendant|durant)\s*\d+`),
}

func (d *detector) AnalyzeRetention(text string) RetentionInfo {
	var info RetentionInfo
	// Later patterns override earlier ones, so a bare "for N" phrasing
	// wins over a unit-qualified duration when both appear.
	for _, re := range retentionPatterns {
		if m := re.FindString(text); m != "" {
			info.Found = true
			info.Duration = m
		}
	}
	return info
}

//Personal.AI order the ending
