package training

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid exercise config")

type ExerciseConfig struct {
	OneRM            float64     `json:"oneRM"`
	MinRepRange      float64     `json:"minRepRange"`
	MaxRepRange      float64     `json:"maxRepRange"`
	MaxWeightStack   float64     `json:"maxWeightStack"`
	Rounding         float64     `json:"rounding"`
	VolumeLevel      VolumeLevel `json:"volumeLevel"`
	MaxSets          int         `json:"maxSets"`
	VolumeMultiplier float64     `json:"volumeMultiplier"`
}

// Normalized fills in defaults: a missing volume multiplier becomes 1 and
// a missing volume level takes defaultLevel.
func (c ExerciseConfig) Normalized(defaultLevel VolumeLevel) ExerciseConfig {
	if c.VolumeMultiplier == 0 {
		c.VolumeMultiplier = 1
	}
	if c.VolumeLevel == "" {
		c.VolumeLevel = defaultLevel
	}
	if level, ok := ParseVolumeLevel(string(c.VolumeLevel)); ok {
		c.VolumeLevel = level
	}
	return c
}

func (c ExerciseConfig) Validate() error {
	if _, ok := NewPositiveFinite(c.OneRM); !ok {
		return fmt.Errorf("%w: oneRM must be a positive number", ErrInvalidConfig)
	}
	if _, ok := NewPositiveFinite(c.MinRepRange); !ok || c.MinRepRange > 1 {
		return fmt.Errorf("%w: minRepRange must be in (0, 1]", ErrInvalidConfig)
	}
	if _, ok := NewPositiveFinite(c.MaxRepRange); !ok || c.MaxRepRange > 1 {
		return fmt.Errorf("%w: maxRepRange must be in (0, 1]", ErrInvalidConfig)
	}
	if c.MinRepRange > c.MaxRepRange {
		return fmt.Errorf("%w: minRepRange greater than maxRepRange", ErrInvalidConfig)
	}
	if _, ok := NewPositiveFinite(c.MaxWeightStack); !ok {
		return fmt.Errorf("%w: maxWeightStack must be a positive number", ErrInvalidConfig)
	}
	if _, ok := NewPositiveFinite(c.Rounding); !ok {
		return fmt.Errorf("%w: rounding must be a positive number", ErrInvalidConfig)
	}
	if c.MaxSets < 1 || c.MaxSets > MaxSetsCeiling {
		return fmt.Errorf("%w: maxSets must be in [1, %d]", ErrInvalidConfig, MaxSetsCeiling)
	}
	if _, ok := NewPositiveFinite(c.VolumeMultiplier); !ok || c.VolumeMultiplier > 1 {
		return fmt.Errorf("%w: volumeMultiplier must be in (0, 1]", ErrInvalidConfig)
	}
	if _, ok := ParseVolumeLevel(string(c.VolumeLevel)); !ok {
		return fmt.Errorf("%w: unknown volume level [%s]", ErrInvalidConfig, c.VolumeLevel)
	}
	return nil
}

// ApplyPersonalBest raises OneRM when e1RM beats it.
func ApplyPersonalBest(c ExerciseConfig, e1RM float64) (ExerciseConfig, bool) {
	if !isFinite(e1RM) || e1RM <= c.OneRM {
		return c, false
	}
	c.OneRM = e1RM
	return c, true
}
