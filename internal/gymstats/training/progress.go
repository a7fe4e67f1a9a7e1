package training

type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendStable   Trend = "stable"
)

const trendThresholdPercent = 2.0

type Progress struct {
	PreviousOneRM float64 `json:"previousOneRM"`
	CurrentOneRM  float64 `json:"currentOneRM"`
	Percent       float64 `json:"percent"`
	Trend         Trend   `json:"trend"`
}

func ProgressPercent(previousOneRM, currentOneRM float64) float64 {
	if !isFinite(previousOneRM) || !isFinite(currentOneRM) || previousOneRM <= 0 {
		return 0
	}
	return (currentOneRM - previousOneRM) / previousOneRM * 100
}

func TrendStatus(progressPercent float64) Trend {
	switch {
	case progressPercent > trendThresholdPercent:
		return TrendIncrease
	case progressPercent < -trendThresholdPercent:
		return TrendDecrease
	default:
		return TrendStable
	}
}

// ProgressOverHistory compares the oldest and the newest of chronologically ordered
// e1RM values. Missing (non positive) values are replaced with fallback.
func ProgressOverHistory(oneRMs []float64, fallback float64) Progress {
	if len(oneRMs) == 0 {
		return Progress{
			PreviousOneRM: fallback,
			CurrentOneRM:  fallback,
			Trend:         TrendStable,
		}
	}

	valueOrFallback := func(v float64) float64 {
		if !isFinite(v) || v <= 0 {
			return fallback
		}
		return v
	}

	previous := valueOrFallback(oneRMs[0])
	current := valueOrFallback(oneRMs[len(oneRMs)-1])
	percent := ProgressPercent(previous, current)

	return Progress{
		PreviousOneRM: previous,
		CurrentOneRM:  current,
		Percent:       percent,
		Trend:         TrendStatus(percent),
	}
}
