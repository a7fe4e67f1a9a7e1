package training

import "strings"

const (
	DefaultDeloadFrequency = 4
	WeeksPerBlock          = 4
)

type VolumeLevel string

const (
	VolumeLow      VolumeLevel = "Low"
	VolumeModerate VolumeLevel = "Moderate"
)

// base effective reps goal per session, by volume tier
var baseEffectiveRepsGoal = map[VolumeLevel]float64{
	VolumeLow:      19.16,
	VolumeModerate: 28.74,
}

func ParseVolumeLevel(s string) (VolumeLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return VolumeLow, true
	case "moderate":
		return VolumeModerate, true
	default:
		return "", false
	}
}

// BaseGoal returns the effective reps goal of a volume level.
// Unknown levels fall back to Moderate.
func BaseGoal(level VolumeLevel) float64 {
	if goal, ok := baseEffectiveRepsGoal[level]; ok {
		return goal
	}
	return baseEffectiveRepsGoal[VolumeModerate]
}

// IsDeloadTime reports whether blockNumber (1-indexed) opens a deload cycle,
// i.e. blocks 1, 1+frequency, 1+2*frequency ... A zero frequency disables deloads.
func IsDeloadTime(blockNumber, frequency int) bool {
	if frequency <= 0 || blockNumber <= 0 {
		return false
	}
	return (blockNumber-1)%frequency == 0
}

// DeloadCounter flattens a (block, week) program position into the
// 1-indexed counter IsDeloadTime expects.
func DeloadCounter(block, week int) int {
	if block <= 0 || week <= 0 {
		return 0
	}
	return (block-1)*WeeksPerBlock + week
}

// EffectiveVolume forces the Low tier during deload weeks.
func EffectiveVolume(level VolumeLevel, deload bool) VolumeLevel {
	if deload {
		return VolumeLow
	}
	if _, ok := baseEffectiveRepsGoal[level]; !ok {
		return VolumeModerate
	}
	return level
}
