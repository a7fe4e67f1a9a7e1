package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/progress"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/gymstats/training"
)

// ExercisesRepo provides the configured exercises.
type ExercisesRepo interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
	List(ctx context.Context) ([]exercises.Exercise, error)
}

type settingsGetter interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// sessionsReader gives the sets of the session in progress and the last saved weight.
type sessionsReader interface {
	CurrentSets(ctx context.Context, exerciseID int) ([]training.LoggedSet, error)
	LastWeight(ctx context.Context, exerciseID int) (float64, error)
}

type progressAnalyzer interface {
	History(ctx context.Context, exerciseID int) (*progress.History, error)
	Progress(ctx context.Context, exerciseID int) (*progress.Report, error)
}

// contextService provides gymtrack context data (schema, exercises, suggestions, progress).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListExercises(ctx context.Context) ([]exercises.Exercise, error)
	GetSuggestion(ctx context.Context, exerciseID int) (*exercises.Suggestion, error)
	GetHistory(ctx context.Context, exerciseID int) (*progress.History, error)
	GetProgress(ctx context.Context, exerciseID int) (*progress.Report, error)
}

// ContextService holds dependencies and implements the gymtrack context business logic.
type ContextService struct {
	schema    SchemaRepo
	exercises ExercisesRepo
	settings  settingsGetter
	sessions  sessionsReader
	analyzer  progressAnalyzer
}

type NewContextServiceParams struct {
	Schema    SchemaRepo
	Exercises ExercisesRepo
	Settings  settingsGetter
	Sessions  sessionsReader
	Analyzer  progressAnalyzer
}

func NewContextService(params NewContextServiceParams) *ContextService {
	return &ContextService{
		schema:    params.Schema,
		exercises: params.Exercises,
		settings:  params.Settings,
		sessions:  params.Sessions,
		analyzer:  params.Analyzer,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the gymtrack tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymtrack DB Schema\n\nNo gymtrack tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymtrack DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(gymtrackTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ListExercises(ctx context.Context) ([]exercises.Exercise, error) {
	return s.exercises.List(ctx)
}

// GetSuggestion returns the weight and sets to do next for the exercise, taking
// the sets already logged in the session in progress into account.
func (s *ContextService) GetSuggestion(ctx context.Context, exerciseID int) (*exercises.Suggestion, error) {
	exercise, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	programSettings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	sets, err := s.sessions.CurrentSets(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get current sets: %w", err)
	}
	prevWeight, err := s.sessions.LastWeight(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("get last weight: %w", err)
	}

	suggestion := exercises.Suggest(*exercise, programSettings, sets, prevWeight)
	return &suggestion, nil
}

func (s *ContextService) GetHistory(ctx context.Context, exerciseID int) (*progress.History, error) {
	return s.analyzer.History(ctx, exerciseID)
}

func (s *ContextService) GetProgress(ctx context.Context, exerciseID int) (*progress.Report, error) {
	return s.analyzer.Progress(ctx, exerciseID)
}
