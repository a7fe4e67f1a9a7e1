package progress

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymtrack/internal/cache"
	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/sessions"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultSessionsLimit = 8
	DefaultCacheTTL      = 10 * time.Minute
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type historyRepo interface {
	ListByExercise(ctx context.Context, exerciseID, limit int) ([]sessions.SavedExercise, error)
}

type exercisesRepo interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

type settingsGetter interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// HistoryEntry is one saved session of an exercise with its recomputed metrics.
type HistoryEntry struct {
	Date   string  `json:"date"`
	Block  int     `json:"block"`
	Week   int     `json:"week"`
	Deload bool    `json:"deload"`
	Weight float64 `json:"weight"`
	training.WeekMetrics
}

type History struct {
	ExerciseID int            `json:"exerciseId"`
	Entries    []HistoryEntry `json:"entries"`
}

type Report struct {
	ExerciseID   int     `json:"exerciseId"`
	SessionsUsed int     `json:"sessionsUsed"`
	OneRM        float64 `json:"oneRM"`
	training.Progress
}

type Analyzer struct {
	history        historyRepo
	exercises      exercisesRepo
	settings       settingsGetter
	cache          cache.Cache
	metricsManager *metrics.Manager
	cacheTTL       time.Duration
	sessionsLimit  int
}

type NewAnalyzerParams struct {
	History        historyRepo
	Exercises      exercisesRepo
	Settings       settingsGetter
	Cache          cache.Cache
	MetricsManager *metrics.Manager
	CacheTTL       time.Duration
	SessionsLimit  int
}

func NewAnalyzer(params NewAnalyzerParams) *Analyzer {
	if params.CacheTTL <= 0 {
		params.CacheTTL = DefaultCacheTTL
	}
	if params.SessionsLimit <= 0 {
		params.SessionsLimit = DefaultSessionsLimit
	}
	return &Analyzer{
		history:        params.History,
		exercises:      params.Exercises,
		settings:       params.Settings,
		cache:          params.Cache,
		metricsManager: params.MetricsManager,
		cacheTTL:       params.CacheTTL,
		sessionsLimit:  params.SessionsLimit,
	}
}

// History recomputes the week metrics of every saved session of the exercise,
// oldest first.
func (a *Analyzer) History(ctx context.Context, exerciseID int) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	exercise, err := a.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	programSettings, err := a.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	saved, err := a.history.ListByExercise(ctx, exerciseID, 0)
	if err != nil {
		return nil, fmt.Errorf("list saved sessions: %w", err)
	}
	chronological := reversed(saved)

	weeks := make([]training.Week, 0, len(chronological))
	for _, s := range chronological {
		weeks = append(weeks, training.Week{
			BlockNumber: training.DeloadCounter(s.Block, s.Week),
			Sets:        s.Sets,
		})
	}
	weekMetrics := training.RecomputeWeeks(exercise.ExerciseConfig, weeks, programSettings.DeloadFrequency)

	history := &History{
		ExerciseID: exerciseID,
		Entries:    make([]HistoryEntry, 0, len(chronological)),
	}
	for i, s := range chronological {
		history.Entries = append(history.Entries, HistoryEntry{
			Date:        s.Date,
			Block:       s.Block,
			Week:        s.Week,
			Deload:      training.IsDeloadTime(weeks[i].BlockNumber, programSettings.DeloadFrequency),
			Weight:      s.Weight,
			WeekMetrics: weekMetrics[i],
		})
	}

	span.SetAttributes(attribute.Int("entries", len(history.Entries)))
	return history, nil
}

// Progress compares the e1RM of the oldest and the newest of the last saved
// sessions of the exercise. Reports are cached until the next save.
func (a *Analyzer) Progress(ctx context.Context, exerciseID int) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	key := cacheKey(exerciseID)
	var cached Report
	found, err := a.cache.Get(key, &cached)
	if err != nil {
		// a broken entry is recomputed
		log.Warnf("progress cache get [%s]: %s", key, err)
	}
	if found && err == nil {
		a.metricsManager.CounterProgressCache.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.Bool("cached", true))
		return &cached, nil
	}
	a.metricsManager.CounterProgressCache.WithLabelValues("miss").Inc()

	exercise, err := a.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	saved, err := a.history.ListByExercise(ctx, exerciseID, a.sessionsLimit)
	if err != nil {
		return nil, fmt.Errorf("list saved sessions: %w", err)
	}

	oneRMs := make([]float64, 0, len(saved))
	for _, s := range reversed(saved) {
		oneRMs = append(oneRMs, s.EstimatedOneRM)
	}

	report := &Report{
		ExerciseID:   exerciseID,
		SessionsUsed: len(saved),
		OneRM:        exercise.OneRM,
		Progress:     training.ProgressOverHistory(oneRMs, exercise.OneRM),
	}

	if err := a.cache.Set(key, report, a.cacheTTL); err != nil {
		log.Warnf("progress cache set [%s]: %s", key, err)
	}

	return report, nil
}

func (a *Analyzer) Invalidate(exerciseID int) {
	a.cache.Del(cacheKey(exerciseID))
}

func cacheKey(exerciseID int) string {
	return "progress:" + strconv.Itoa(exerciseID)
}

func reversed(saved []sessions.SavedExercise) []sessions.SavedExercise {
	out := make([]sessions.SavedExercise, len(saved))
	for i, s := range saved {
		out[len(saved)-1-i] = s
	}
	return out
}
