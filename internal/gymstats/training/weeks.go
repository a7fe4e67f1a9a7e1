package training

// Week is one saved session of an exercise, as fed to RecomputeWeeks.
type Week struct {
	BlockNumber int
	Sets        []LoggedSet
}

type WeekMetrics struct {
	RepsSummary
	SuggestedSets   int     `json:"suggestedSets"`
	SuggestedWeight float64 `json:"suggestedWeight"`
	// EstimatedOneRM is the key set e1RM, 0 when the week has no key set
	EstimatedOneRM float64 `json:"estimatedOneRM"`
}

// RecomputeWeeks derives the metrics of every week in chronological order.
// The e1RM used for suggestions starts at the configured one rep max and is replaced
// by each week's key set e1RM, and the suggested weight of a week becomes the
// previous weight of the next one.
func RecomputeWeeks(cfg ExerciseConfig, weeks []Week, deloadFrequency int) []WeekMetrics {
	rollingOneRM := cfg.OneRM
	prevWeight := 0.0

	metrics := make([]WeekMetrics, 0, len(weeks))
	for _, week := range weeks {
		suggestedSets := SuggestedSets(SetsParams{
			Sets:            week.Sets,
			BlockNumber:     week.BlockNumber,
			GoalMultiplier:  cfg.VolumeMultiplier,
			VolumeLevel:     cfg.VolumeLevel,
			MaxSets:         cfg.MaxSets,
			DeloadFrequency: ParamsDeloadFrequency(deloadFrequency),
		})
		suggestedWeight := SuggestedWeight(WeightParams{
			OneRM:           rollingOneRM,
			MinRepRange:     cfg.MinRepRange,
			MaxRepRange:     cfg.MaxRepRange,
			MaxWeightStack:  cfg.MaxWeightStack,
			Rounding:        cfg.Rounding,
			PrevWeight:      prevWeight,
			BlockNumber:     week.BlockNumber,
			DeloadFrequency: ParamsDeloadFrequency(deloadFrequency),
		})

		estimatedOneRM := SessionOneRM(week.Sets)
		metrics = append(metrics, WeekMetrics{
			RepsSummary:     SummarizeSets(week.Sets),
			SuggestedSets:   suggestedSets,
			SuggestedWeight: suggestedWeight,
			EstimatedOneRM:  estimatedOneRM,
		})

		if estimatedOneRM > 0 {
			rollingOneRM = estimatedOneRM
		}
		if suggestedWeight > 0 {
			prevWeight = suggestedWeight
		}
	}

	return metrics
}
