package risk

// Risk level identifiers.
const (
	LevelLow    = "LOW"
	LevelMedium = "MEDIUM"
	LevelHigh   = "HIGH"
)

// Transparency score thresholds for the risk levels.  Scores are on a
// 0 to 100 scale where higher means more transparent.
const (
	lowRiskMin    = 70
	mediumRiskMin = 40
)

// Level is the classified risk with its display attributes.  Labels and
// descriptions are the French copy shared by all clients.
type Level struct {
	Level       string `json:"level"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// DetermineLevel classifies a transparency score.
func DetermineLevel(score int) Level {
	switch {
	case score >= lowRiskMin:
		return Level{
			Level:       LevelLow,
			Label:       "Faible",
			Color:       "#22c55e",
			Icon:        "✓",
			Description: "Politique transparente et respectueuse",
		}
	case score >= mediumRiskMin:
		return Level{
			Level:       LevelMedium,
			Label:       "Moyen",
			Color:       "#f59e0b",
			Icon:        "!",
			Description: "Quelques clauses à surveiller",
		}
	default:
		return Level{
			Level:       LevelHigh,
			Label:       "Élevé",
			Color:       "#ef4444",
			Icon:        "⚠",
			Description: "Nombreuses clauses préoccupantes",
		}
	}
}

//Personal.AI order the ending
