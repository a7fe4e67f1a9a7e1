package training

import "math"

// PositiveFinite is a float64 known to be finite and strictly positive.
// Values coming from clients (JSON numbers, CLI flags) are checked once at the edge
// and then passed around in this form.
type PositiveFinite float64

func NewPositiveFinite(v float64) (PositiveFinite, bool) {
	if !isFinite(v) || v <= 0 {
		return 0, false
	}
	return PositiveFinite(v), true
}

func (p PositiveFinite) Float64() float64 {
	return float64(p)
}

// RoundReps converts a client supplied rep count to an integer, rounding half away from zero.
// Non-finite values become 0.
func RoundReps(reps float64) int {
	if !isFinite(reps) {
		return 0
	}
	rounded := math.Round(reps)
	if rounded > math.MaxInt32 {
		return math.MaxInt32
	}
	if rounded < math.MinInt32 {
		return math.MinInt32
	}
	return int(rounded)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
