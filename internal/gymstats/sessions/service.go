package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoSession          = errors.New("no session in progress")
	ErrSetIndexOutOfRange = errors.New("set index out of range")
	ErrNoCompletedSets    = errors.New("no completed sets to save")
	ErrInvalidSet         = errors.New("invalid set")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type currentStore interface {
	Get(ctx context.Context) (training.SessionState, error)
	Save(ctx context.Context, state training.SessionState) error
	Clear(ctx context.Context) error
}

type historyRepo interface {
	SaveExercise(ctx context.Context, saved SavedExercise) (SavedExercise, error)
	LastForExercise(ctx context.Context, exerciseID int) (SavedExercise, error)
}

type exercisesRepo interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

type settingsGetter interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type progressInvalidator interface {
	Invalidate(exerciseID int)
}

type SaveResult struct {
	Saved        SavedExercise `json:"saved"`
	PersonalBest bool          `json:"personalBest"`
	OneRM        float64       `json:"oneRM"`
}

type Service struct {
	current        currentStore
	history        historyRepo
	exercises      exercisesRepo
	settings       settingsGetter
	progress       progressInvalidator
	metricsManager *metrics.Manager

	// injectable for tests
	now   func() time.Time
	newID func() string
}

type NewServiceParams struct {
	Current        currentStore
	History        historyRepo
	Exercises      exercisesRepo
	Settings       settingsGetter
	Progress       progressInvalidator
	MetricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		current:        params.Current,
		history:        params.History,
		exercises:      params.Exercises,
		settings:       params.Settings,
		progress:       params.Progress,
		metricsManager: params.MetricsManager,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// NewLoggedSet validates client supplied numbers: reps are rounded to the
// nearest whole rep, the weight must not be negative.
func NewLoggedSet(reps, weight float64) (training.LoggedSet, error) {
	roundedReps := training.RoundReps(reps)
	if roundedReps < 0 {
		return training.LoggedSet{}, fmt.Errorf("%w: negative reps", ErrInvalidSet)
	}
	if weight != 0 {
		if _, ok := training.NewPositiveFinite(weight); !ok {
			return training.LoggedSet{}, fmt.Errorf("%w: weight must be a positive number", ErrInvalidSet)
		}
	}
	return training.LoggedSet{
		Reps:   roundedReps,
		Weight: weight,
	}, nil
}

func (s *Service) Current(ctx context.Context) (training.SessionState, error) {
	return s.current.Get(ctx)
}

// AddSet appends a set to the exercise, starting a new session at the current
// program position when none is in progress.
func (s *Service) AddSet(ctx context.Context, exerciseID int, set training.LoggedSet) (_ training.SessionState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.add-set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("exercise.id", exerciseID),
		attribute.Int("reps", set.Reps),
		attribute.Float64("weight", set.Weight),
	)

	if _, err := s.exercises.Get(ctx, exerciseID); err != nil {
		return training.SessionState{}, err
	}

	state, err := s.current.Get(ctx)
	if errors.Is(err, ErrNoSession) {
		programSettings, err := s.settings.Get(ctx)
		if err != nil {
			return training.SessionState{}, fmt.Errorf("get settings: %w", err)
		}
		state = training.NewSessionState(s.newID(), s.now(), programSettings.CurrentBlock, programSettings.CurrentWeek)
		log.Debugf("new session %s started, block %d, week %d", state.ID, state.Block, state.Week)
	} else if err != nil {
		return training.SessionState{}, err
	}

	state = state.AppendSet(exerciseID, set)
	if err := s.current.Save(ctx, state); err != nil {
		return training.SessionState{}, err
	}

	s.metricsManager.CounterSetsLogged.Inc()
	return state, nil
}

func (s *Service) RemoveSet(ctx context.Context, exerciseID, index int) (_ training.SessionState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.remove-set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID), attribute.Int("index", index))

	state, err := s.current.Get(ctx)
	if err != nil {
		return training.SessionState{}, err
	}

	state, removed := state.RemoveSet(exerciseID, index)
	if !removed {
		return training.SessionState{}, ErrSetIndexOutOfRange
	}

	if err := s.current.Save(ctx, state); err != nil {
		return training.SessionState{}, err
	}
	return state, nil
}

// SaveExercise moves the exercise from the session in progress into the
// history. A personal best raises the exercise one rep max in the same write.
func (s *Service) SaveExercise(ctx context.Context, exerciseID int) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.save-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	state, err := s.current.Get(ctx)
	if err != nil {
		return nil, err
	}

	sessionExercise, ok := state.Exercise(exerciseID)
	if !ok || training.SummarizeSets(sessionExercise.Sets).CompletedSets == 0 {
		return nil, ErrNoCompletedSets
	}

	exercise, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	weight := sessionExercise.Weight
	if keySet, ok := training.KeySet(sessionExercise.Sets); ok && weight == 0 {
		weight = keySet.Weight
	}
	e1RM := training.SessionOneRM(sessionExercise.Sets)

	saved, err := s.history.SaveExercise(ctx, SavedExercise{
		Date:           state.Date,
		Block:          state.Block,
		Week:           state.Week,
		ExerciseID:     exerciseID,
		Weight:         weight,
		EstimatedOneRM: e1RM,
		Sets:           state.Sets(exerciseID),
		SavedAt:        s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("save exercise to history: %w", err)
	}

	result := &SaveResult{
		Saved: saved,
		OneRM: exercise.OneRM,
	}
	// the history save already stored the raised one rep max
	if cfg, raised := training.ApplyPersonalBest(exercise.ExerciseConfig, e1RM); raised {
		log.Infof("personal best for exercise %d [%s]: %.2f -> %.2f", exerciseID, exercise.Name, exercise.OneRM, cfg.OneRM)
		result.PersonalBest = true
		result.OneRM = cfg.OneRM
		s.metricsManager.CounterPersonalBests.Inc()
	}

	next := state.WithoutExercise(exerciseID)
	if next.IsEmpty() {
		err = s.current.Clear(ctx)
	} else {
		err = s.current.Save(ctx, next)
	}
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterSessionsSaved.Inc()
	if e1RM > 0 {
		s.metricsManager.HistogramSessionOneRM.Observe(e1RM)
	}
	s.progress.Invalidate(exerciseID)

	span.SetAttributes(
		attribute.Float64("one_rm", e1RM),
		attribute.Bool("personal_best", result.PersonalBest),
	)
	return result, nil
}

func (s *Service) Clear(ctx context.Context) error {
	return s.current.Clear(ctx)
}

// CurrentSets returns the sets logged for the exercise in the session in
// progress, nil when there is no session.
func (s *Service) CurrentSets(ctx context.Context, exerciseID int) ([]training.LoggedSet, error) {
	state, err := s.current.Get(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return state.Sets(exerciseID), nil
}

// LastWeight is the weight used in the last saved session of the exercise, 0 if none.
func (s *Service) LastWeight(ctx context.Context, exerciseID int) (float64, error) {
	saved, err := s.history.LastForExercise(ctx, exerciseID)
	if errors.Is(err, ErrNoHistory) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return saved.Weight, nil
}
