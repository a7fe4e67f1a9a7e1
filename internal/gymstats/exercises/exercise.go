package exercises

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/training"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise with that name already exists")
	ErrInvalidExercise  = errors.New("invalid exercise")
)

type Exercise struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	training.ExerciseConfig
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prepare trims the name, fills config defaults and validates the result.
func (e Exercise) Prepare(defaultLevel training.VolumeLevel) (Exercise, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return Exercise{}, fmt.Errorf("%w: name empty", ErrInvalidExercise)
	}

	e.ExerciseConfig = e.ExerciseConfig.Normalized(defaultLevel)
	if err := e.ExerciseConfig.Validate(); err != nil {
		return Exercise{}, fmt.Errorf("%w: %w", ErrInvalidExercise, err)
	}

	return e, nil
}
