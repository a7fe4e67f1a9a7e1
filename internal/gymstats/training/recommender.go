package training

import "math"

const (
	MaxSetsCeiling = 10

	// NoDeload turns deload weeks off in SetsParams and WeightParams,
	// where a zero DeloadFrequency means DefaultDeloadFrequency.
	NoDeload = -1

	// quotients this close to an integer are treated as exact multiples of the rounding step
	roundingTolerance = 1e-9
)

type SetsParams struct {
	Sets                  []LoggedSet
	BlockNumber           int
	StartingEffectiveReps float64
	// GoalMultiplier scales the goal down, values outside (0, 1] mean 1
	GoalMultiplier float64
	VolumeLevel    VolumeLevel
	// MaxSets outside [1, 10] means 10
	MaxSets int
	// DeloadFrequency of 0 means DefaultDeloadFrequency, NoDeload disables deload weeks
	DeloadFrequency int
}

type WeightParams struct {
	OneRM          float64
	MinRepRange    float64
	MaxRepRange    float64
	MaxWeightStack float64
	Rounding       float64
	PrevWeight     float64
	BlockNumber    int
	// DeloadFrequency of 0 means DefaultDeloadFrequency, NoDeload disables deload weeks
	DeloadFrequency int
}

// ParamsDeloadFrequency maps a stored frequency, where 0 disables deloads,
// to the SetsParams and WeightParams convention.
func ParamsDeloadFrequency(frequency int) int {
	if frequency <= 0 {
		return NoDeload
	}
	return frequency
}

func resolveDeloadFrequency(frequency int) int {
	switch {
	case frequency == 0:
		return DefaultDeloadFrequency
	case frequency < 0:
		return 0
	default:
		return frequency
	}
}

func normalizeGoalMultiplier(m float64) float64 {
	if !isFinite(m) || m <= 0 || m > 1 {
		return 1
	}
	return m
}

func normalizeMaxSets(maxSets int) int {
	if maxSets <= 0 || maxSets > MaxSetsCeiling {
		return MaxSetsCeiling
	}
	return maxSets
}

// EffectiveRepsGoal is the cumulative effective reps target of one session.
func EffectiveRepsGoal(level VolumeLevel, goalMultiplier float64, deload bool) float64 {
	return BaseGoal(EffectiveVolume(level, deload)) * normalizeGoalMultiplier(goalMultiplier)
}

// SuggestedSets proposes how many sets to do in the session: one more than
// completed while the effective reps goal is not reached, clamped to [1, MaxSets].
func SuggestedSets(params SetsParams) int {
	maxSets := normalizeMaxSets(params.MaxSets)
	startingEffReps := params.StartingEffectiveReps
	if !isFinite(startingEffReps) || startingEffReps < 0 {
		startingEffReps = 0
	}

	deload := IsDeloadTime(params.BlockNumber, resolveDeloadFrequency(params.DeloadFrequency))
	goal := EffectiveRepsGoal(params.VolumeLevel, params.GoalMultiplier, deload)

	summary := SummarizeSets(params.Sets)
	suggested := summary.CompletedSets
	if startingEffReps+summary.TotalEffectiveReps < goal {
		suggested++
	}

	return clampInt(suggested, 1, maxSets)
}

// SuggestedWeight proposes the working weight: at least the previous weight and the
// bottom of the rep range band, at most the top of the band or the weight stack.
// Deload weeks always go for the bottom of the band. The result is always rounded up
// to a multiple of the rounding step, so it can pass the ceiling by less than one step.
func SuggestedWeight(params WeightParams) float64 {
	for _, v := range []float64{
		params.OneRM,
		params.MinRepRange,
		params.MaxRepRange,
		params.MaxWeightStack,
		params.Rounding,
	} {
		if !isFinite(v) || v <= 0 {
			return 0
		}
	}

	prevWeight := params.PrevWeight
	if !isFinite(prevWeight) {
		prevWeight = 0
	}

	floor := math.Max(prevWeight, params.OneRM*params.MinRepRange)
	ceiling := math.Min(params.OneRM*params.MaxRepRange, params.MaxWeightStack)
	candidate := math.Min(floor, ceiling)

	if IsDeloadTime(params.BlockNumber, resolveDeloadFrequency(params.DeloadFrequency)) {
		candidate = math.Min(params.OneRM*params.MinRepRange, params.MaxWeightStack)
	}

	return roundUpToStep(candidate, params.Rounding)
}

func roundUpToStep(candidate, step float64) float64 {
	steps := math.Ceil(candidate/step - roundingTolerance)

	result := steps * step
	if !isFinite(result) {
		return 0
	}
	return result
}
