package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `id, name, one_rm, min_rep_range, max_rep_range, max_weight_stack, rounding,
	volume_level, max_sets, volume_multiplier, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise
				(name, one_rm, min_rep_range, max_rep_range, max_weight_stack, rounding,
				 volume_level, max_sets, volume_multiplier, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
			RETURNING id;`,
		exercise.Name, exercise.OneRM, exercise.MinRepRange, exercise.MaxRepRange, exercise.MaxWeightStack,
		exercise.Rounding, string(exercise.VolumeLevel), exercise.MaxSets, exercise.VolumeMultiplier, exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, ErrExerciseExists
			}
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	exercise.UpdatedAt = exercise.CreatedAt
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise ORDER BY name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET
				name = $1, one_rm = $2, min_rep_range = $3, max_rep_range = $4, max_weight_stack = $5,
				rounding = $6, volume_level = $7, max_sets = $8, volume_multiplier = $9, updated_at = $10
			WHERE id = $11;`,
		exercise.Name, exercise.OneRM, exercise.MinRepRange, exercise.MaxRepRange, exercise.MaxWeightStack,
		exercise.Rounding, string(exercise.VolumeLevel), exercise.MaxSets, exercise.VolumeMultiplier,
		exercise.UpdatedAt, exercise.ID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseExists
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var (
			e           Exercise
			volumeLevel string
		)
		if err := rows.Scan(
			&e.ID, &e.Name, &e.OneRM, &e.MinRepRange, &e.MaxRepRange, &e.MaxWeightStack, &e.Rounding,
			&volumeLevel, &e.MaxSets, &e.VolumeMultiplier, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.VolumeLevel = training.VolumeLevel(volumeLevel)
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
