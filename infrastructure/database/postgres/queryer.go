package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
