package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id int) error
}

type settingsGetter interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type sessionsReader interface {
	CurrentSets(ctx context.Context, exerciseID int) ([]training.LoggedSet, error)
	LastWeight(ctx context.Context, exerciseID int) (float64, error)
}

// progressInvalidator drops cached progress reports that depend on the exercise config.
type progressInvalidator interface {
	Invalidate(exerciseID int)
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	repo     exercisesRepo
	settings settingsGetter
	sessions sessionsReader
	progress progressInvalidator
	now      func() time.Time
}

func NewHandler(
	repo exercisesRepo,
	settings settingsGetter,
	sessions sessionsReader,
	progress progressInvalidator,
) *Handler {
	return &Handler{
		repo:     repo,
		settings: settings,
		sessions: sessions,
		progress: progress,
		now:      time.Now,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	exercise, ok := handler.decodeExercise(ctx, w, r)
	if !ok {
		return
	}
	exercise.CreatedAt = handler.now()

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if errors.Is(err, ErrExerciseExists) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to add new exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %d [%s]", addedExercise.ID, addedExercise.Name)
	pkg.WriteJSON(w, addedExercise, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := exerciseIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	e, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "error, failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "error, failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, ListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := exerciseIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	existing, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update exercise, failed to get exercise %d: %s", id, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	exercise, ok := handler.decodeExercise(ctx, w, r)
	if !ok {
		return
	}
	exercise.ID = id
	exercise.CreatedAt = existing.CreatedAt
	exercise.UpdatedAt = handler.now()

	err = handler.repo.Update(ctx, &exercise)
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrExerciseExists):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Errorf("failed to update exercise %d: %s", id, err)
		http.Error(w, "error, failed to update exercise", http.StatusInternalServerError)
		return
	}

	handler.progress.Invalidate(id)
	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, ok := exerciseIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	err := handler.repo.Delete(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete exercise %d: %s", id, err)
		http.Error(w, "error, failed to delete exercise", http.StatusInternalServerError)
		return
	}

	handler.progress.Invalidate(id)
	log.Debugf("exercise %d deleted", id)
	pkg.WriteJSON(w, DeleteExerciseResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.suggestion")
	defer span.End()

	id, ok := exerciseIDFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("suggestion, failed to get exercise %d: %s", id, err)
		http.Error(w, "error, failed to get suggestion", http.StatusInternalServerError)
		return
	}

	s, err := handler.settings.Get(ctx)
	if err != nil {
		log.Errorf("suggestion, failed to get settings: %s", err)
		http.Error(w, "error, failed to get suggestion", http.StatusInternalServerError)
		return
	}

	sets, err := handler.sessions.CurrentSets(ctx, id)
	if err != nil {
		log.Errorf("suggestion, failed to get current sets for %d: %s", id, err)
		http.Error(w, "error, failed to get suggestion", http.StatusInternalServerError)
		return
	}

	prevWeight, err := handler.sessions.LastWeight(ctx, id)
	if err != nil {
		// a suggestion without the previous weight is still useful
		log.Errorf("suggestion, failed to get last weight for %d: %s", id, err)
		prevWeight = 0
	}

	suggestion := Suggest(*exercise, s, sets, prevWeight)
	span.SetAttributes(
		attribute.Float64("suggested_weight", suggestion.SuggestedWeight),
		attribute.Int("suggested_sets", suggestion.SuggestedSets),
	)

	pkg.WriteJSON(w, suggestion, http.StatusOK)
}

func (handler *Handler) decodeExercise(ctx context.Context, w http.ResponseWriter, r *http.Request) (Exercise, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Exercise{}, false
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return Exercise{}, false
	}

	s, err := handler.settings.Get(ctx)
	if err != nil {
		log.Errorf("exercise, failed to get settings: %s", err)
		http.Error(w, "error, failed to get settings", http.StatusInternalServerError)
		return Exercise{}, false
	}

	exercise, err = exercise.Prepare(s.DefaultVolumeLevel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Exercise{}, false
	}

	return exercise, true
}

func exerciseIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
