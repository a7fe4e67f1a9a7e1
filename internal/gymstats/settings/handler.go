package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=settings_mocks_test.go -package=settings_test

type settingsRepo interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
	AdvanceWeek(ctx context.Context) (Settings, error)
}

type Handler struct {
	repo settingsRepo
}

func NewHandler(repo settingsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.get")
	defer span.End()

	s, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to get settings: %s", err)
		http.Error(w, "error, failed to get settings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, s, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var s Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		log.Tracef("update settings, unmarshal json params: %s", err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, s)
	if errors.Is(err, ErrInvalidSettings) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to update settings: %s", err)
		http.Error(w, "error, failed to update settings", http.StatusInternalServerError)
		return
	}

	log.Debugf("settings updated: %+v", updated)
	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleAdvanceWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.advance")
	defer span.End()

	advanced, err := handler.repo.AdvanceWeek(ctx)
	if err != nil {
		log.Errorf("failed to advance week: %s", err)
		http.Error(w, "error, failed to advance week", http.StatusInternalServerError)
		return
	}

	log.Debugf("advanced to block %d, week %d", advanced.CurrentBlock, advanced.CurrentWeek)
	pkg.WriteJSON(w, advanced, http.StatusOK)
}
