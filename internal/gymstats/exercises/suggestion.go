package exercises

import (
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"
)

// Suggestion is what to do next for an exercise in the current training week.
type Suggestion struct {
	ExerciseID        int                    `json:"exerciseId"`
	Block             int                    `json:"block"`
	Week              int                    `json:"week"`
	Deload            bool                   `json:"deload"`
	SuggestedWeight   float64                `json:"suggestedWeight"`
	RepRange          training.RepRange      `json:"repRange"`
	SuggestedSets     int                    `json:"suggestedSets"`
	EffectiveRepsGoal float64                `json:"effectiveRepsGoal"`
	Logged            training.RepsSummary   `json:"logged"`
	Status            training.SessionStatus `json:"status"`
}

// Suggest combines the exercise config, the program position and the sets
// logged so far. prevWeight is the weight used in the last saved session, 0 if none.
func Suggest(exercise Exercise, s settings.Settings, sets []training.LoggedSet, prevWeight float64) Suggestion {
	cfg := exercise.ExerciseConfig.Normalized(s.DefaultVolumeLevel)
	counter := s.DeloadCounter()
	deload := training.IsDeloadTime(counter, s.DeloadFrequency)

	weight := training.SuggestedWeight(training.WeightParams{
		OneRM:           cfg.OneRM,
		MinRepRange:     cfg.MinRepRange,
		MaxRepRange:     cfg.MaxRepRange,
		MaxWeightStack:  cfg.MaxWeightStack,
		Rounding:        cfg.Rounding,
		PrevWeight:      prevWeight,
		BlockNumber:     counter,
		DeloadFrequency: training.ParamsDeloadFrequency(s.DeloadFrequency),
	})

	return Suggestion{
		ExerciseID:      exercise.ID,
		Block:           s.CurrentBlock,
		Week:            s.CurrentWeek,
		Deload:          deload,
		SuggestedWeight: weight,
		RepRange:        training.EstimateRepRange(weight, cfg.OneRM),
		SuggestedSets: training.SuggestedSets(training.SetsParams{
			Sets:            sets,
			BlockNumber:     counter,
			GoalMultiplier:  cfg.VolumeMultiplier,
			VolumeLevel:     cfg.VolumeLevel,
			MaxSets:         cfg.MaxSets,
			DeloadFrequency: training.ParamsDeloadFrequency(s.DeloadFrequency),
		}),
		EffectiveRepsGoal: training.EffectiveRepsGoal(cfg.VolumeLevel, cfg.VolumeMultiplier, deload),
		Logged:            training.SummarizeSets(sets),
		Status:            training.Status(sets, cfg, counter, s.DeloadFrequency),
	}
}
