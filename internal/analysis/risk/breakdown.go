package risk

import (
	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/analysis/nlp"
	"github.com/turtacn/PolicyLens/pkg/types/policy"
)

// ClauseAdjustment is one detected clause's contribution to the score.
type ClauseAdjustment struct {
	Type    string `json:"type"`
	Impact  string `json:"impact"`
	Weight  int    `json:"weight"`
	Summary string `json:"summary"`
}

// ReadabilityAdjustment describes the effect of document readability.
type ReadabilityAdjustment struct {
	Impact int    `json:"impact"`
	Reason string `json:"reason"`
}

// MetadataAdjustment describes a score change driven by document metadata.
type MetadataAdjustment struct {
	Reason string `json:"reason"`
	Impact int    `json:"impact"`
}

// Adjustments groups the score changes by their source.
type Adjustments struct {
	Clauses     []ClauseAdjustment    `json:"clauses"`
	Readability ReadabilityAdjustment `json:"readability"`
	Metadata    []MetadataAdjustment  `json:"metadata"`
}

// Breakdown explains how a score was assembled from the base score.
type Breakdown struct {
	BaseScore   int         `json:"baseScore"`
	Adjustments Adjustments `json:"adjustments"`
}

func (s *scorer) breakdown(input Input) Breakdown {
	return Breakdown{
		BaseScore: baseScore,
		Adjustments: Adjustments{
			Clauses:     clauseAdjustments(input.Clauses),
			Readability: readabilityAdjustment(input.NLP.Readability),
			Metadata:    metadataAdjustments(input.DocumentMeta),
		},
	}
}

func clauseAdjustments(clauses *clause.Result) []ClauseAdjustment {
	adjustments := []ClauseAdjustment{}
	if clauses == nil {
		return adjustments
	}

	for _, def := range clause.Catalog() {
		detection, ok := clauses.DetectedClauses[def.Type]
		if !ok || !detection.Detected {
			continue
		}

		impact := "negative"
		weight := detection.Weight
		if weight < 0 {
			impact = "positive"
			weight = -weight
		}

		adjustments = append(adjustments, ClauseAdjustment{
			Type:    detection.Type,
			Impact:  impact,
			Weight:  weight,
			Summary: detection.Summary,
		})
	}
	return adjustments
}

func readabilityAdjustment(readability nlp.Readability) ReadabilityAdjustment {
	switch {
	case readability.Score >= clearLanguageFleschMin:
		return ReadabilityAdjustment{Impact: 15, Reason: "Langage clair et accessible"}
	case readability.Score < opaqueLanguageFleschMax:
		return ReadabilityAdjustment{Impact: -10, Reason: "Langage complexe et difficile"}
	default:
		return ReadabilityAdjustment{Impact: 0, Reason: "Lisibilité moyenne"}
	}
}

func metadataAdjustments(meta policy.DocumentMeta) []MetadataAdjustment {
	adjustments := []MetadataAdjustment{}

	if meta.HasPrivacyPolicy {
		adjustments = append(adjustments, MetadataAdjustment{Reason: "Politique de confidentialité présente", Impact: 5})
	}
	if meta.HasContactInfo {
		adjustments = append(adjustments, MetadataAdjustment{Reason: "Informations de contact disponibles", Impact: 5})
	}
	if meta.IsOutdated {
		adjustments = append(adjustments, MetadataAdjustment{Reason: "Politique obsolète", Impact: -10})
	}

	return adjustments
}

//Personal.AI order the ending
