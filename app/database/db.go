package database

import "database/sql"

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Query
// functions take it so handlers that pair an insert with a follow-up read
// can run both inside one transaction.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
