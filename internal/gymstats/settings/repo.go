package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns the stored settings, or the defaults when nothing is stored yet.
func (r *Repo) Get(ctx context.Context) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSettings(r.db.QueryRow(
		ctx,
		`SELECT deload_frequency, current_block, current_week, default_volume_level
			FROM gymtrack_settings WHERE id = 1;`,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		span.SetAttributes(attribute.Bool("defaults", true))
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (r *Repo) Update(ctx context.Context, s Settings) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if level, ok := training.ParseVolumeLevel(string(s.DefaultVolumeLevel)); ok {
		s.DefaultVolumeLevel = level
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO gymtrack_settings
				(id, deload_frequency, current_block, current_week, default_volume_level, updated_at)
				VALUES (1, $1, $2, $3, $4, NOW())
			ON CONFLICT (id) DO UPDATE SET
				deload_frequency = EXCLUDED.deload_frequency,
				current_block = EXCLUDED.current_block,
				current_week = EXCLUDED.current_week,
				default_volume_level = EXCLUDED.default_volume_level,
				updated_at = EXCLUDED.updated_at;`,
		s.DeloadFrequency, s.CurrentBlock, s.CurrentWeek, string(s.DefaultVolumeLevel),
	)
	if err != nil {
		return Settings{}, fmt.Errorf("upsert settings: %w", err)
	}

	return s, nil
}

// AdvanceWeek moves the program to the next week within a transaction.
func (r *Repo) AdvanceWeek(ctx context.Context) (_ Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.advance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var advanced Settings
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		current, err := scanSettings(tx.QueryRow(
			ctx,
			`SELECT deload_frequency, current_block, current_week, default_volume_level
				FROM gymtrack_settings WHERE id = 1 FOR UPDATE;`,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			current = Defaults()
		} else if err != nil {
			return err
		}

		advanced = current.AdvanceWeek()
		_, err = tx.Exec(
			ctx,
			`INSERT INTO gymtrack_settings
					(id, deload_frequency, current_block, current_week, default_volume_level, updated_at)
					VALUES (1, $1, $2, $3, $4, NOW())
				ON CONFLICT (id) DO UPDATE SET
					current_block = EXCLUDED.current_block,
					current_week = EXCLUDED.current_week,
					updated_at = EXCLUDED.updated_at;`,
			advanced.DeloadFrequency, advanced.CurrentBlock, advanced.CurrentWeek, string(advanced.DefaultVolumeLevel),
		)
		return err
	})
	if err != nil {
		return Settings{}, fmt.Errorf("advance week: %w", err)
	}

	span.SetAttributes(
		attribute.Int("block", advanced.CurrentBlock),
		attribute.Int("week", advanced.CurrentWeek),
	)
	return advanced, nil
}

func scanSettings(row pgx.Row) (Settings, error) {
	var (
		s     Settings
		level string
	)
	if err := row.Scan(&s.DeloadFrequency, &s.CurrentBlock, &s.CurrentWeek, &level); err != nil {
		return Settings{}, err
	}
	s.DefaultVolumeLevel = training.VolumeLevel(level)
	return s, nil
}
