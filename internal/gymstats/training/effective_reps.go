package training

// effectiveRepsTable holds the hypertrophic value of a set by rep count.
// Anything above 8 reps flattens at the last entry.
var effectiveRepsTable = [...]float64{0, 1, 2, 2.99, 3.94, 4.79, 5.41, 5.64, 5.65}

type LoggedSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type RepsSummary struct {
	TotalEffectiveReps float64 `json:"totalEffectiveReps"`
	CompletedSets      int     `json:"completedSets"`
	TotalHVL           float64 `json:"totalHVL"`
}

func EffectiveReps(reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps >= len(effectiveRepsTable) {
		reps = len(effectiveRepsTable) - 1
	}
	return effectiveRepsTable[reps]
}

// SummarizeSets walks the sets in logged order. The first set with no reps
// ends the session: sets after it are not counted, even if valid.
func SummarizeSets(sets []LoggedSet) RepsSummary {
	var summary RepsSummary
	for _, set := range sets {
		if set.Reps <= 0 {
			break
		}

		effReps := EffectiveReps(set.Reps)
		summary.CompletedSets++
		summary.TotalEffectiveReps += effReps
		if set.Weight > 0 && isFinite(set.Weight) {
			summary.TotalHVL += EstimateOneRM(set.Weight, set.Reps) * effReps
		}
	}
	return summary
}

// KeySet returns the first set that carries both reps and weight.
// Its e1RM is taken as the strength estimate of the whole session.
func KeySet(sets []LoggedSet) (LoggedSet, bool) {
	for _, set := range sets {
		if set.Reps > 0 && set.Weight > 0 && isFinite(set.Weight) {
			return set, true
		}
	}
	return LoggedSet{}, false
}
