package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type service interface {
	Current(ctx context.Context) (training.SessionState, error)
	AddSet(ctx context.Context, exerciseID int, set training.LoggedSet) (training.SessionState, error)
	RemoveSet(ctx context.Context, exerciseID, index int) (training.SessionState, error)
	SaveExercise(ctx context.Context, exerciseID int) (*SaveResult, error)
	Clear(ctx context.Context) error
}

// AddSetRequest carries raw client numbers, they are validated by NewLoggedSet.
type AddSetRequest struct {
	Reps   float64 `json:"reps"`
	Weight float64 `json:"weight"`
}

type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.current")
	defer span.End()

	state, err := handler.service.Current(ctx)
	if errors.Is(err, ErrNoSession) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get current session: %s", err)
		http.Error(w, "error, failed to get current session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.clear")
	defer span.End()

	if err := handler.service.Clear(ctx); err != nil {
		log.Errorf("failed to clear current session: %s", err)
		http.Error(w, "error, failed to clear current session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ClearResponse{Cleared: true}, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.add-set")
	defer span.End()

	exerciseID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	set, err := NewLoggedSet(req.Reps, req.Weight)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := handler.service.AddSet(ctx, exerciseID, set)
	if errors.Is(err, exercises.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to add set to exercise %d: %s", exerciseID, err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusCreated)
}

func (handler *Handler) HandleRemoveSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.remove-set")
	defer span.End()

	exerciseID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	index, ok := intPathVar(w, r, "index")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", exerciseID), attribute.Int("index", index))

	state, err := handler.service.RemoveSet(ctx, exerciseID, index)
	if errors.Is(err, ErrNoSession) || errors.Is(err, ErrSetIndexOutOfRange) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to remove set %d of exercise %d: %s", index, exerciseID, err)
		http.Error(w, "error, failed to remove set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleSaveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.save-exercise")
	defer span.End()

	exerciseID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	result, err := handler.service.SaveExercise(ctx, exerciseID)
	switch {
	case errors.Is(err, ErrNoCompletedSets):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrNoSession), errors.Is(err, exercises.ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to save exercise %d: %s", exerciseID, err)
		http.Error(w, "error, failed to save exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise %d saved to session %s, e1RM %.2f", exerciseID, result.Saved.Date, result.Saved.EstimatedOneRM)
	pkg.WriteJSON(w, result, http.StatusOK)
}

func intPathVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	vars := mux.Vars(r)
	valStr := vars[name]
	if valStr == "" {
		http.Error(w, "error, "+name+" empty", http.StatusBadRequest)
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		http.Error(w, "error, "+name+" NaN", http.StatusBadRequest)
		return 0, false
	}
	return val, true
}
