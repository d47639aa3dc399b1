// Package csvdb loads a delimited text file into a SQLite database on disk,
// validates the stored rows, and prints the full table to the console.
//
// csvdb is a single-run batch pipeline rather than a query engine: each run
// resolves one input file, derives a column schema from its header row,
// rebuilds one SQLite table from its data rows, verifies what was stored,
// and renders every record in fixed-width columns. The database file stays
// on disk after the run so other tools can query it.
//
// # Features
//
//   - Automatic delimiter detection for comma, tab, semicolon, and pipe
//   - Excel (XLSX) and Parquet inputs alongside delimited text
//   - Transparent decompression of gzip, bzip2, xz, and zstandard inputs
//   - Header names sanitized into SQL-safe column identifiers
//   - Row-count and empty-row validation with a sample readback
//   - Streaming report that prints rows without buffering the table
//
// # Basic Usage
//
// The simplest way to use csvdb is the package-level Run function:
//
//	result, err := csvdb.Run(ctx, "users.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d rows into %s\n", result.RowsLoaded, result.DatabasePath)
//
// # Advanced Usage
//
// For control over the database path, table name, or report formatting, use
// the Builder:
//
//	job, err := csvdb.NewBuilder().
//	    SetInput("users.csv").
//	    SetDatabasePath("archive.db").
//	    SetTableName("users").
//	    SetDisplayWidth(20).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := job.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Database Naming
//
// When no database path is configured, it is derived from the input file
// name by replacing the format and compression extensions with ".db", placed
// in the working directory:
//   - "users.csv" becomes "users.db"
//   - "data.tsv.gz" becomes "data.db"
//   - "/path/to/metrics.parquet" becomes "metrics.db"
//
// All rows land in a single table, "csv_data" by default. An existing table
// with that name is dropped at the start of each run, so reloading the same
// file is idempotent.
//
// # Column Handling
//
// Column names come from the first row of the input. Each name is trimmed,
// then every character outside ASCII letters and digits is replaced with an
// underscore, so "First Name" becomes column "First_Name". Header fields
// that sanitize to the same name cause the run to fail before the database
// is created. All columns are stored as TEXT and values are kept exactly as
// they appear in the input. Rows shorter than the header are padded with
// empty strings; rows longer than the header are truncated to it.
//
// # Errors and Exit Codes
//
// Failures are classified by sentinel errors so callers can map them to
// process exit codes with ExitCode:
//   - ErrInputNotFound: the input path does not exist (exit 1)
//   - ErrFormat, ErrParse: the input cannot be understood (exit 2)
//   - ErrStorage: a database operation failed (exit 3)
//
// Any other error maps to exit 4, and a nil error to exit 0.
package csvdb
