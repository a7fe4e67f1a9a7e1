package training

import "math"

// MaxEstimableReps is the highest rep count the e1RM formula is defined for.
const MaxEstimableReps = 36

type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// EstimateOneRM estimates a one rep max with a modified Brzycki formula: w * 36 / (37 - r).
func EstimateOneRM(weight float64, reps int) float64 {
	if !isFinite(weight) || weight <= 0 {
		return 0
	}
	if reps <= 0 || reps > MaxEstimableReps {
		return 0
	}
	return weight * 36 / float64(37-reps)
}

// EstimateRepRange inverts EstimateOneRM and reports a window of +-2 reps
// around the rep count expected at the given weight.
func EstimateRepRange(weight, e1RM float64) RepRange {
	if !isFinite(weight) || !isFinite(e1RM) || weight <= 0 || e1RM <= 0 {
		return RepRange{}
	}
	if weight >= e1RM {
		return RepRange{}
	}

	reps := int(math.Floor(37 - 36*weight/e1RM))
	if reps < 1 {
		reps = 1
	}

	return RepRange{
		Min: clampInt(reps-2, 1, MaxEstimableReps),
		Max: clampInt(reps+2, 1, MaxEstimableReps),
	}
}

// SessionOneRM is the e1RM of the session key set, 0 if no set qualifies.
func SessionOneRM(sets []LoggedSet) float64 {
	keySet, ok := KeySet(sets)
	if !ok {
		return 0
	}
	return EstimateOneRM(keySet.Weight, keySet.Reps)
}
