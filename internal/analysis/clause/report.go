package clause

// Severity thresholds for report grouping, applied to clause weights.
const (
	criticalWeightMin  = 8
	importantWeightMin = 5
)

// maxReportExamples caps the example sentences carried per report item.
const maxReportExamples = 2

// ReportItem is one detected clause prepared for display.
type ReportItem struct {
	Type       string   `json:"type"`
	Summary    string   `json:"summary"`
	Confidence float64  `json:"confidence"`
	Weight     int      `json:"weight"`
	Examples   []string `json:"examples"`
}

// Report groups detected clauses by severity.  Positive holds the clauses
// with negative weight, which improve the document's standing.
type Report struct {
	Critical  []ReportItem `json:"critical"`
	Important []ReportItem `json:"important"`
	Moderate  []ReportItem `json:"moderate"`
	Positive  []ReportItem `json:"positive"`
}

func (d *detector) Report(result *Result) *Report {
	report := &Report{
		Critical:  []ReportItem{},
		Important: []ReportItem{},
		Moderate:  []ReportItem{},
		Positive:  []ReportItem{},
	}
	if result == nil {
		return report
	}

	// Catalog order keeps report contents deterministic.
	for _, def := range d.catalog {
		detection, ok := result.DetectedClauses[def.Type]
		if !ok || !detection.Detected {
			continue
		}

		examples := detection.Sentences
		if len(examples) > maxReportExamples {
			examples = examples[:maxReportExamples]
		}

		item := ReportItem{
			Type:       detection.Type,
			Summary:    detection.Summary,
			Confidence: detection.Confidence,
			Weight:     detection.Weight,
			Examples:   examples,
		}

		switch {
		case detection.Weight >= criticalWeightMin:
			report.Critical = append(report.Critical, item)
		case detection.Weight >= importantWeightMin:
			report.Important = append(report.Important, item)
		case detection.Weight > 0:
			report.Moderate = append(report.Moderate, item)
		default:
			report.Positive = append(report.Positive, item)
		}
	}

	return report
}

//Personal.AI order the ending
