package csvdb

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/csvdb/domain/model"
	"github.com/nao1215/csvdb/internal/config"
)

// Builder assembles a Job. All setters return the builder for chaining;
// Build validates the assembled configuration.
type Builder struct {
	inputPath    string
	databasePath string
	tableName    string
	displayWidth int
	stdout       io.Writer
}

// NewBuilder creates a Builder with the default destination table name,
// display width, and stdout as the report writer.
func NewBuilder() *Builder {
	return &Builder{
		tableName:    config.DefaultTableName,
		displayWidth: config.DefaultDisplayWidth,
		stdout:       os.Stdout,
	}
}

// SetInput sets the input file path. Delimited text, XLSX, and Parquet
// inputs are supported, optionally compressed with gzip, bzip2, xz, or zstd.
func (b *Builder) SetInput(path string) *Builder {
	b.inputPath = path
	return b
}

// SetDatabasePath overrides the destination database file path. When unset,
// the path is derived from the input file name as "<stem>.db" in the
// working directory.
func (b *Builder) SetDatabasePath(path string) *Builder {
	b.databasePath = path
	return b
}

// SetTableName overrides the destination table name.
func (b *Builder) SetTableName(name string) *Builder {
	b.tableName = name
	return b
}

// SetDisplayWidth overrides the report cell width in display characters.
func (b *Builder) SetDisplayWidth(width int) *Builder {
	b.displayWidth = width
	return b
}

// SetOutput redirects the console output (status lines, validation summary,
// and the record report).
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.stdout = w
	return b
}

// Build validates the configuration and returns a runnable Job. The input
// path itself is checked when the job runs, not here.
func (b *Builder) Build() (*Job, error) {
	if b.tableName == "" {
		return nil, errors.New("csvdb: table name must not be empty")
	}
	if b.displayWidth < 1 {
		return nil, fmt.Errorf("csvdb: display width must be positive, got %d", b.displayWidth)
	}
	stdout := b.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Job{
		inputPath:    b.inputPath,
		dbPath:       b.databasePath,
		tableName:    b.tableName,
		displayWidth: b.displayWidth,
		stdout:       stdout,
	}, nil
}

// Job is one load run: it resolves the input, loads it into the destination
// table, validates the load, renders the report, and releases the storage
// handle. A Job is single-use and not safe for concurrent use.
type Job struct {
	inputPath    string
	dbPath       string
	tableName    string
	displayWidth int
	stdout       io.Writer

	input  *model.File
	schema model.Schema
	db     *sql.DB
	closed bool
	result *Result
}

// Result summarizes a completed run.
type Result struct {
	// InputPath is the resolved input file path.
	InputPath string
	// DatabasePath is the destination database file.
	DatabasePath string
	// TableName is the destination table.
	TableName string
	// Columns are the sanitized column names, in order.
	Columns []string
	// Delimiter is the detected field separator, 0 for XLSX and Parquet.
	Delimiter rune
	// RowsLoaded is the number of records inserted.
	RowsLoaded int
	// TotalRows is the stored row count observed by validation.
	TotalRows int
	// EmptyRows is the number of stored rows whose every column is empty.
	EmptyRows int
	// RowsPrinted is the number of records the report rendered.
	RowsPrinted int
}

// resolveInput checks the input path exists and derives the database path
// from the input file name when no override was configured.
func (j *Job) resolveInput() error {
	info, err := os.Stat(j.inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, j.inputPath)
		}
		return fmt.Errorf("failed to stat input %s: %w", j.inputPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, j.inputPath)
	}

	j.input = model.NewFile(j.inputPath)
	if j.dbPath == "" {
		j.dbPath = j.input.Stem() + ".db"
	}
	j.result.InputPath = j.inputPath
	j.result.DatabasePath = j.dbPath
	j.result.TableName = j.tableName

	j.printf("Loading CSV file: %s\n", j.inputPath)
	j.printf("Creating SQLite database: %s\n", j.dbPath)
	return nil
}

// closeStorage releases the database handle exactly once. The confirmation
// line is only printed when a handle was actually opened.
func (j *Job) closeStorage() error {
	if j.closed || j.db == nil {
		return nil
	}
	j.closed = true

	err := j.db.Close()
	j.printf("\nDatabase connection closed. Data saved in '%s'\n", j.dbPath)
	if err != nil {
		return fmt.Errorf("%w: failed to close database: %w", ErrStorage, err)
	}
	return nil
}

func (j *Job) printf(format string, args ...any) {
	fmt.Fprintf(j.stdout, format, args...)
}
