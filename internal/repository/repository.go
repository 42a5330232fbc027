package repository

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds SQLite statements with "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// yearOrder sorts NULL years after dated rows, then by the given id column
func yearOrder(yearCol, idCol string) []string {
	return []string{yearCol + " IS NULL", yearCol, idCol}
}
