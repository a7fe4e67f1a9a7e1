//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/progress"
	"github.com/2beens/gymtrack/internal/gymstats/sessions"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExercise() exercises.Exercise {
	return exercises.Exercise{
		Name: fmt.Sprintf("%s %s", gofakeit.Noun(), gofakeit.UUID()),
		ExerciseConfig: training.ExerciseConfig{
			OneRM:          100,
			MinRepRange:    0.8,
			MaxRepRange:    0.85,
			MaxWeightStack: 180,
			Rounding:       2.5,
			VolumeLevel:    training.VolumeModerate,
			MaxSets:        10,
		},
	}
}

func (s *IntegrationTestSuite) addExercise(ctx context.Context, exercise exercises.Exercise) exercises.Exercise {
	var added exercises.Exercise
	s.doJSON(ctx, http.MethodPost, "/gymstats/exercises", exercise, http.StatusCreated, &added)
	require.NotZero(s.T(), added.ID)
	return added
}

func (s *IntegrationTestSuite) setWeek(ctx context.Context, block, week int) {
	s.doJSON(ctx, http.MethodPut, "/gymstats/settings", settings.Settings{
		DeloadFrequency:    training.DefaultDeloadFrequency,
		CurrentBlock:       block,
		CurrentWeek:        week,
		DefaultVolumeLevel: training.VolumeModerate,
	}, http.StatusOK, nil)
}

func (s *IntegrationTestSuite) addSet(ctx context.Context, exerciseID int, reps, weight float64) training.SessionState {
	var state training.SessionState
	s.doJSON(
		ctx, http.MethodPost, fmt.Sprintf("/gymstats/session/exercises/%d/sets", exerciseID),
		sessions.AddSetRequest{Reps: reps, Weight: weight},
		http.StatusCreated, &state,
	)
	return state
}

func (s *IntegrationTestSuite) saveExercise(ctx context.Context, exerciseID int) sessions.SaveResult {
	var result sessions.SaveResult
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/gymstats/session/exercises/%d/save", exerciseID), nil, http.StatusOK, &result)
	return result
}

func (s *IntegrationTestSuite) TestUnauthorizedWrite() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/gymstats/settings/advance", nil)
	require.NoError(s.T(), err)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestSettings() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.resetState(ctx)

	var current settings.Settings
	s.doJSON(ctx, http.MethodGet, "/gymstats/settings", nil, http.StatusOK, &current)
	assert.Equal(s.T(), settings.Defaults(), current)

	s.setWeek(ctx, 1, 4)

	var advanced settings.Settings
	s.doJSON(ctx, http.MethodPost, "/gymstats/settings/advance", nil, http.StatusOK, &advanced)
	assert.Equal(s.T(), 2, advanced.CurrentBlock)
	assert.Equal(s.T(), 1, advanced.CurrentWeek)

	s.doJSON(ctx, http.MethodGet, "/gymstats/settings", nil, http.StatusOK, &current)
	assert.Equal(s.T(), advanced, current)

	status, _ := s.doRequest(ctx, http.MethodPut, "/gymstats/settings", settings.Settings{
		DeloadFrequency:    4,
		CurrentBlock:       1,
		CurrentWeek:        5,
		DefaultVolumeLevel: training.VolumeLow,
	})
	assert.Equal(s.T(), http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestExercises() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.resetState(ctx)

	exercise := newTestExercise()
	added := s.addExercise(ctx, exercise)
	assert.Equal(s.T(), exercise.Name, added.Name)
	assert.Equal(s.T(), 1.0, added.VolumeMultiplier)

	status, _ := s.doRequest(ctx, http.MethodPost, "/gymstats/exercises", exercise)
	assert.Equal(s.T(), http.StatusConflict, status)

	invalid := newTestExercise()
	invalid.MinRepRange = 0.9
	status, _ = s.doRequest(ctx, http.MethodPost, "/gymstats/exercises", invalid)
	assert.Equal(s.T(), http.StatusBadRequest, status)

	var fetched exercises.Exercise
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/gymstats/exercises/%d", added.ID), nil, http.StatusOK, &fetched)
	assert.Equal(s.T(), added.ID, fetched.ID)
	assert.Equal(s.T(), added.ExerciseConfig, fetched.ExerciseConfig)

	update := fetched
	update.OneRM = 110
	update.VolumeLevel = training.VolumeLow
	s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/gymstats/exercises/%d", added.ID), update, http.StatusOK, nil)

	var list exercises.ListResponse
	s.doJSON(ctx, http.MethodGet, "/gymstats/exercises", nil, http.StatusOK, &list)
	require.Equal(s.T(), 1, list.Total)
	assert.Equal(s.T(), 110.0, list.Exercises[0].OneRM)
	assert.Equal(s.T(), training.VolumeLow, list.Exercises[0].VolumeLevel)

	var deleted exercises.DeleteExerciseResponse
	s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/gymstats/exercises/%d", added.ID), nil, http.StatusOK, &deleted)
	assert.Equal(s.T(), added.ID, deleted.DeletedID)

	status, _ = s.doRequest(ctx, http.MethodGet, fmt.Sprintf("/gymstats/exercises/%d", added.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/gymstats/exercises/%d", added.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestSessionFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	s.resetState(ctx)
	s.setWeek(ctx, 1, 2)

	exercise := s.addExercise(ctx, newTestExercise())
	exercisePath := fmt.Sprintf("/gymstats/exercises/%d", exercise.ID)

	var suggestion exercises.Suggestion
	s.doJSON(ctx, http.MethodGet, exercisePath+"/suggestion", nil, http.StatusOK, &suggestion)
	assert.False(s.T(), suggestion.Deload)
	assert.Equal(s.T(), training.SessionReady, suggestion.Status)
	assert.GreaterOrEqual(s.T(), suggestion.SuggestedWeight, 80.0)
	assert.LessOrEqual(s.T(), suggestion.SuggestedWeight, 85.0)
	assert.Equal(s.T(), 0, suggestion.Logged.CompletedSets)

	status, _ := s.doRequest(ctx, http.MethodGet, "/gymstats/session", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)

	state := s.addSet(ctx, exercise.ID, 8, 80)
	assert.Equal(s.T(), 1, state.Block)
	assert.Equal(s.T(), 2, state.Week)
	s.addSet(ctx, exercise.ID, 7.6, 80)
	state = s.addSet(ctx, exercise.ID, 3, 80)
	require.Len(s.T(), state.Exercises[exercise.ID].Sets, 3)

	s.doJSON(
		ctx, http.MethodDelete, fmt.Sprintf("/gymstats/session/exercises/%d/sets/2", exercise.ID),
		nil, http.StatusOK, &state,
	)
	require.Len(s.T(), state.Exercises[exercise.ID].Sets, 2)
	assert.Equal(s.T(), 8, state.Exercises[exercise.ID].Sets[1].Reps)

	s.doJSON(ctx, http.MethodGet, exercisePath+"/suggestion", nil, http.StatusOK, &suggestion)
	assert.Equal(s.T(), 2, suggestion.Logged.CompletedSets)
	assert.InDelta(s.T(), 2*training.EffectiveReps(8), suggestion.Logged.TotalEffectiveReps, 1e-9)

	result := s.saveExercise(ctx, exercise.ID)
	assert.False(s.T(), result.PersonalBest)
	assert.Equal(s.T(), 100.0, result.OneRM)
	assert.Equal(s.T(), 80.0, result.Saved.Weight)
	assert.InDelta(s.T(), training.EstimateOneRM(80, 8), result.Saved.EstimatedOneRM, 1e-9)
	assert.Equal(s.T(), time.Now().Format(training.DateLayout), result.Saved.Date)

	// not a personal best, the stored one rep max is untouched
	var stored exercises.Exercise
	s.doJSON(ctx, http.MethodGet, exercisePath, nil, http.StatusOK, &stored)
	assert.Equal(s.T(), 100.0, stored.OneRM)

	// the only exercise was saved, nothing left in progress
	status, _ = s.doRequest(ctx, http.MethodGet, "/gymstats/session", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/gymstats/session/exercises/%d/save", exercise.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)

	var history progress.History
	s.doJSON(ctx, http.MethodGet, exercisePath+"/history", nil, http.StatusOK, &history)
	require.Len(s.T(), history.Entries, 1)
	assert.Equal(s.T(), result.Saved.Date, history.Entries[0].Date)
	assert.False(s.T(), history.Entries[0].Deload)
}

func (s *IntegrationTestSuite) TestSessionsMergeByDate() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	s.resetState(ctx)
	s.setWeek(ctx, 2, 1)

	first := s.addExercise(ctx, newTestExercise())
	second := s.addExercise(ctx, newTestExercise())

	s.addSet(ctx, first.ID, 8, 80)
	s.addSet(ctx, second.ID, 6, 80)

	firstResult := s.saveExercise(ctx, first.ID)

	// the other exercise stays in progress
	var state training.SessionState
	s.doJSON(ctx, http.MethodGet, "/gymstats/session", nil, http.StatusOK, &state)
	_, firstLeft := state.Exercises[first.ID]
	assert.False(s.T(), firstLeft)
	assert.Len(s.T(), state.Exercises[second.ID].Sets, 1)

	secondResult := s.saveExercise(ctx, second.ID)
	assert.Equal(s.T(), firstResult.Saved.SessionID, secondResult.Saved.SessionID)

	// saving the same exercise again on the same date replaces its entry
	s.addSet(ctx, first.ID, 10, 82.5)
	again := s.saveExercise(ctx, first.ID)
	assert.Equal(s.T(), firstResult.Saved.SessionID, again.Saved.SessionID)
	assert.Equal(s.T(), 82.5, again.Saved.Weight)

	assert.Equal(s.T(), 1, s.countRows(ctx, "SELECT COUNT(*) FROM workout_session"))
	assert.Equal(s.T(), 2, s.countRows(ctx, "SELECT COUNT(*) FROM workout_session_exercise"))
	assert.Equal(s.T(), 1, s.countRows(
		ctx, "SELECT COUNT(*) FROM workout_session_exercise WHERE exercise_id = $1", first.ID,
	))
}

func (s *IntegrationTestSuite) TestPersonalBestAndProgress() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	s.resetState(ctx)
	s.setWeek(ctx, 1, 3)

	exercise := s.addExercise(ctx, newTestExercise())
	exercisePath := fmt.Sprintf("/gymstats/exercises/%d", exercise.ID)

	var report progress.Report
	s.doJSON(ctx, http.MethodGet, exercisePath+"/progress", nil, http.StatusOK, &report)
	assert.Equal(s.T(), 0, report.SessionsUsed)

	s.addSet(ctx, exercise.ID, 10, 90)
	result := s.saveExercise(ctx, exercise.ID)
	require.True(s.T(), result.PersonalBest)
	wantOneRM := training.EstimateOneRM(90, 10)
	assert.InDelta(s.T(), wantOneRM, result.OneRM, 1e-9)

	var fetched exercises.Exercise
	s.doJSON(ctx, http.MethodGet, exercisePath, nil, http.StatusOK, &fetched)
	assert.InDelta(s.T(), wantOneRM, fetched.OneRM, 1e-9)

	// the save invalidates the cached report
	s.doJSON(ctx, http.MethodGet, exercisePath+"/progress", nil, http.StatusOK, &report)
	assert.Equal(s.T(), 1, report.SessionsUsed)
	assert.InDelta(s.T(), wantOneRM, report.OneRM, 1e-9)

	// so does an exercise update
	fetched.OneRM = 150
	s.doJSON(ctx, http.MethodPut, exercisePath, fetched, http.StatusOK, nil)
	s.doJSON(ctx, http.MethodGet, exercisePath+"/progress", nil, http.StatusOK, &report)
	assert.InDelta(s.T(), 150, report.OneRM, 1e-9)

	status, _ := s.doRequest(ctx, http.MethodGet, "/gymstats/exercises/999999/progress", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	status, _ = s.doRequest(ctx, http.MethodGet, "/gymstats/exercises/999999/history", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}
