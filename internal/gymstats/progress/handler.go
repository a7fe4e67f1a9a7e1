package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type analyzer interface {
	History(ctx context.Context, exerciseID int) (*History, error)
	Progress(ctx context.Context, exerciseID int) (*Report, error)
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.history")
	defer span.End()

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	history, err := handler.analyzer.History(ctx, exerciseID)
	if errors.Is(err, exercises.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get history of exercise %d: %s", exerciseID, err)
		http.Error(w, "error, failed to get exercise history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.report")
	defer span.End()

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	report, err := handler.analyzer.Progress(ctx, exerciseID)
	if errors.Is(err, exercises.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get progress of exercise %d: %s", exerciseID, err)
		http.Error(w, "error, failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}
