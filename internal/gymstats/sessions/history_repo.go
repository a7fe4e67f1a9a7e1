package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoHistory = errors.New("no saved sessions")

// SavedExercise is one exercise of a historical session.
type SavedExercise struct {
	SessionID      int                  `json:"sessionId"`
	Date           string               `json:"date"`
	Block          int                  `json:"block"`
	Week           int                  `json:"week"`
	ExerciseID     int                  `json:"exerciseId"`
	Weight         float64              `json:"weight"`
	EstimatedOneRM float64              `json:"estimatedOneRM"`
	Sets           []training.LoggedSet `json:"sets"`
	SavedAt        time.Time            `json:"savedAt"`
}

type HistoryRepo struct {
	db *pgxpool.Pool
}

func NewHistoryRepo(db *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{
		db: db,
	}
}

// SaveExercise stores the exercise under the session of its date. Saving on a
// date that already has a session reuses it, saving the same exercise again
// replaces the previous entry. In the same transaction the exercise one rep max
// is raised to the estimated one, if that is higher.
func (r *HistoryRepo) SaveExercise(ctx context.Context, saved SavedExercise) (_ SavedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.save-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("exercise.id", saved.ExerciseID),
		attribute.String("date", saved.Date),
	)

	sessionDate, err := time.Parse(training.DateLayout, saved.Date)
	if err != nil {
		return SavedExercise{}, fmt.Errorf("parse session date [%s]: %w", saved.Date, err)
	}

	if saved.Sets == nil {
		saved.Sets = []training.LoggedSet{}
	}
	setsJson, err := json.Marshal(saved.Sets)
	if err != nil {
		return SavedExercise{}, fmt.Errorf("marshal sets: %w", err)
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_session (session_date, block, week)
					VALUES ($1, $2, $3)
				ON CONFLICT (session_date) DO UPDATE SET session_date = EXCLUDED.session_date
				RETURNING id, block, week;`,
			sessionDate, saved.Block, saved.Week,
		).Scan(&saved.SessionID, &saved.Block, &saved.Week); err != nil {
			return fmt.Errorf("upsert session: %w", err)
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workout_session_exercise
					(session_id, exercise_id, weight, estimated_one_rm, sets, saved_at)
					VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (session_id, exercise_id) DO UPDATE SET
					weight = EXCLUDED.weight,
					estimated_one_rm = EXCLUDED.estimated_one_rm,
					sets = EXCLUDED.sets,
					saved_at = EXCLUDED.saved_at;`,
			saved.SessionID, saved.ExerciseID, saved.Weight, saved.EstimatedOneRM, setsJson, saved.SavedAt,
		); err != nil {
			return fmt.Errorf("upsert session exercise: %w", err)
		}

		if saved.EstimatedOneRM > 0 {
			if _, err := tx.Exec(
				ctx,
				`UPDATE exercise SET one_rm = $1, updated_at = NOW()
					WHERE id = $2 AND one_rm < $1;`,
				saved.EstimatedOneRM, saved.ExerciseID,
			); err != nil {
				return fmt.Errorf("raise one rep max: %w", err)
			}
		}
		return nil
	})
	if pkg.IsForeignKeyViolationError(err) {
		return SavedExercise{}, exercises.ErrExerciseNotFound
	}
	if err != nil {
		return SavedExercise{}, err
	}

	span.SetAttributes(attribute.Int("session.id", saved.SessionID))
	return saved, nil
}

// ListByExercise returns the saved sessions of an exercise, newest first.
// A limit <= 0 returns all of them.
func (r *HistoryRepo) ListByExercise(ctx context.Context, exerciseID, limit int) (_ []SavedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list-by-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID), attribute.Int("limit", limit))

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				ws.id, ws.session_date, ws.block, ws.week,
				wse.exercise_id, wse.weight, wse.estimated_one_rm, wse.sets, wse.saved_at
			FROM workout_session_exercise wse
			JOIN workout_session ws ON ws.id = wse.session_id
			WHERE wse.exercise_id = $1
			ORDER BY ws.session_date DESC
			LIMIT $2;`,
		exerciseID, limitArg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []SavedExercise
	for rows.Next() {
		var (
			s           SavedExercise
			sessionDate time.Time
			setsJson    []byte
		)
		if err := rows.Scan(
			&s.SessionID, &sessionDate, &s.Block, &s.Week,
			&s.ExerciseID, &s.Weight, &s.EstimatedOneRM, &setsJson, &s.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(setsJson, &s.Sets); err != nil {
			return nil, fmt.Errorf("unmarshal sets of session %d: %w", s.SessionID, err)
		}
		s.Date = sessionDate.Format(training.DateLayout)
		saved = append(saved, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(saved)))
	return saved, nil
}

func (r *HistoryRepo) LastForExercise(ctx context.Context, exerciseID int) (SavedExercise, error) {
	saved, err := r.ListByExercise(ctx, exerciseID, 1)
	if err != nil {
		return SavedExercise{}, err
	}
	if len(saved) == 0 {
		return SavedExercise{}, ErrNoHistory
	}
	return saved[0], nil
}
