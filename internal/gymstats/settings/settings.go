package settings

import (
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/gymstats/training"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the program state shared by all exercises.
type Settings struct {
	// DeloadFrequency of 0 disables deload weeks
	DeloadFrequency    int                  `json:"deloadFrequency"`
	CurrentBlock       int                  `json:"currentBlock"`
	CurrentWeek        int                  `json:"currentWeek"`
	DefaultVolumeLevel training.VolumeLevel `json:"defaultVolumeLevel"`
}

func Defaults() Settings {
	return Settings{
		DeloadFrequency:    training.DefaultDeloadFrequency,
		CurrentBlock:       1,
		CurrentWeek:        1,
		DefaultVolumeLevel: training.VolumeModerate,
	}
}

func (s Settings) Validate() error {
	if s.DeloadFrequency < 0 {
		return fmt.Errorf("%w: deloadFrequency must not be negative", ErrInvalidSettings)
	}
	if s.CurrentBlock < 1 {
		return fmt.Errorf("%w: currentBlock must be at least 1", ErrInvalidSettings)
	}
	if s.CurrentWeek < 1 || s.CurrentWeek > training.WeeksPerBlock {
		return fmt.Errorf("%w: currentWeek must be in [1, %d]", ErrInvalidSettings, training.WeeksPerBlock)
	}
	if _, ok := training.ParseVolumeLevel(string(s.DefaultVolumeLevel)); !ok {
		return fmt.Errorf("%w: unknown volume level [%s]", ErrInvalidSettings, s.DefaultVolumeLevel)
	}
	return nil
}

// AdvanceWeek moves to the next training week, past the last week of a
// block it starts the next block.
func (s Settings) AdvanceWeek() Settings {
	s.CurrentWeek++
	if s.CurrentWeek > training.WeeksPerBlock {
		s.CurrentWeek = 1
		s.CurrentBlock++
	}
	return s
}

func (s Settings) DeloadCounter() int {
	return training.DeloadCounter(s.CurrentBlock, s.CurrentWeek)
}

func (s Settings) IsDeloadWeek() bool {
	return training.IsDeloadTime(s.DeloadCounter(), s.DeloadFrequency)
}
