package risk

// marketAverage is the mean transparency score observed across assessed
// policies.
const marketAverage = 55

// MarketComparison positions one score against the market distribution.
type MarketComparison struct {
	Score         int    `json:"score"`
	MarketAverage int    `json:"marketAverage"`
	Difference    int    `json:"difference"`
	Percentile    int    `json:"percentile"`
	Comparison    string `json:"comparison"`
}

func (s *scorer) CompareWithMarket(score int) MarketComparison {
	difference := score - marketAverage

	comparison := "Dans la moyenne"
	if difference > 10 {
		comparison = "Mieux que la moyenne"
	} else if difference < -10 {
		comparison = "Moins bien que la moyenne"
	}

	return MarketComparison{
		Score:         score,
		MarketAverage: marketAverage,
		Difference:    difference,
		Percentile:    Percentile(score),
		Comparison:    comparison,
	}
}

// Percentile maps a score onto an approximate percentile, assuming a roughly
// normal distribution centered on the market average.
func Percentile(score int) int {
	switch {
	case score >= 90:
		return 95
	case score >= 80:
		return 85
	case score >= 70:
		return 70
	case score >= 60:
		return 55
	case score >= 50:
		return 40
	case score >= 40:
		return 25
	case score >= 30:
		return 15
	default:
		return 5
	}
}

//Personal.AI order the ending
