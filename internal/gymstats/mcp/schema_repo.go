package mcp

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo reads the column layout of the gymtrack tables.
type SchemaRepo interface {
	GetColumns(ctx context.Context) ([]SchemaColumn, error)
}

type SchemaColumn struct {
	TableSchema string  `db:"table_schema"`
	TableName   string  `db:"table_name"`
	ColumnName  string  `db:"column_name"`
	DataType    string  `db:"data_type"`
	IsNullable  string  `db:"is_nullable"`
	ColumnDef   *string `db:"column_default"`
}

var gymtrackTables = []string{"exercise", "workout_session", "workout_session_exercise", "gymtrack_settings"}

const columnsQuery = `
	SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = ANY($1)
	ORDER BY table_name, ordinal_position`

type PoolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) *PoolSchemaRepo {
	return &PoolSchemaRepo{pool: pool}
}

func (r *PoolSchemaRepo) GetColumns(ctx context.Context) ([]SchemaColumn, error) {
	rows, err := r.pool.Query(ctx, columnsQuery, gymtrackTables)
	if err != nil {
		return nil, fmt.Errorf("query gymtrack columns: %w", err)
	}

	cols, err := pgx.CollectRows(rows, pgx.RowToStructByName[SchemaColumn])
	if err != nil {
		return nil, fmt.Errorf("collect gymtrack columns: %w", err)
	}
	return cols, nil
}
