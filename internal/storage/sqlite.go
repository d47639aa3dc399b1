// Package storage provides the SQLite access layer: connection setup for the
// destination database file and the SQL statements used to create, populate,
// and read the destination table.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	// Registers the CGO-free "sqlite" driver.
	_ "modernc.org/sqlite"
)

// Open opens the SQLite database file at path, creating it if needed.
// WAL mode with a busy timeout, and a single connection because SQLite
// allows only one writer at a time.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// QuoteIdentifier quotes a table or column name for safe interpolation into
// a statement. Values never go through this path; they are always bound as
// parameters.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// DropTableSQL returns the statement that removes the destination table from
// a previous run.
func DropTableSQL(table string) string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS %s`, QuoteIdentifier(table))
}

// CreateTableSQL returns the statement creating the destination table with
// one TEXT column per name, in order.
func CreateTableSQL(table string, columns []string) string {
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		defs = append(defs, fmt.Sprintf(`%s TEXT`, QuoteIdentifier(col)))
	}
	return fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (%s)`,
		QuoteIdentifier(table),
		strings.Join(defs, ", "),
	)
}

// InsertSQL returns the parameterized insert statement with one placeholder
// per column.
func InsertSQL(table string, columnCount int) string {
	placeholders := make([]string, columnCount)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		`INSERT INTO %s VALUES (%s)`,
		QuoteIdentifier(table),
		strings.Join(placeholders, ", "),
	)
}

// CountSQL returns the total row count query.
func CountSQL(table string) string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM %s`, QuoteIdentifier(table))
}

// CountEmptySQL returns the query counting rows whose every column is the
// empty string. columns must not be empty.
func CountEmptySQL(table string, columns []string) string {
	conds := make([]string, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, fmt.Sprintf(`%s = ''`, QuoteIdentifier(col)))
	}
	return fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE %s`,
		QuoteIdentifier(table),
		strings.Join(conds, " AND "),
	)
}

// SelectAllSQL returns the full-table query used by the report.
func SelectAllSQL(table string) string {
	return fmt.Sprintf(`SELECT * FROM %s`, QuoteIdentifier(table))
}

// SampleSQL returns the bounded sample query used by validation.
func SampleSQL(table string, limit int) string {
	return fmt.Sprintf(`SELECT * FROM %s LIMIT %d`, QuoteIdentifier(table), limit)
}
