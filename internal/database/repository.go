package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Queryer is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx, so the same
// repository methods run standalone or inside a transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	DriverName() string
}
