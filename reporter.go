package csvdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nao1215/csvdb/internal/storage"
)

// bannerWidth is the length of the "=" rules framing the report.
const bannerWidth = 60

// report renders every stored row to the console from a fresh full-table
// query. Rows are fetched one at a time from the cursor and printed as they
// arrive, so memory use stays flat regardless of row count.
func (j *Job) report(ctx context.Context) error {
	rows, err := j.db.QueryContext(ctx, storage.SelectAllSQL(j.tableName))
	if err != nil {
		return fmt.Errorf("%w: failed to query records: %w", ErrStorage, err)
	}
	defer rows.Close()

	banner := strings.Repeat("=", bannerWidth)
	j.printf("\n%s\n", banner)
	j.printf("ALL RECORDS FROM TABLE '%s':\n", j.tableName)
	j.printf("%s\n", banner)

	headerLine := j.formatRow(j.schema.Names())
	j.printf("%s\n", headerLine)
	j.printf("%s\n", strings.Repeat("-", len(headerLine)))

	printed := 0
	for rows.Next() {
		fields, err := scanTextRow(rows)
		if err != nil {
			return fmt.Errorf("%w: failed to scan record: %w", ErrStorage, err)
		}
		j.printf("%s\n", j.formatRow(fields))
		printed++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: failed to iterate records: %w", ErrStorage, err)
	}

	j.result.RowsPrinted = printed
	j.printf("\nTotal records printed: %d\n", printed)
	return nil
}

// formatRow renders fields as fixed-width cells joined by " | ". Cells are
// left-aligned and padded or truncated to the configured display width.
func (j *Job) formatRow(fields []string) string {
	cells := make([]string, len(fields))
	for i, field := range fields {
		cells[i] = fmt.Sprintf("%-*.*s", j.displayWidth, j.displayWidth, field)
	}
	return strings.Join(cells, " | ")
}

// scanTextRow scans the current row into strings, mapping NULL to the empty
// string. The column set is taken from the result itself, so callers do not
// need to know the table width.
func scanTextRow(rows *sql.Rows) ([]string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	raw := make([]sql.RawBytes, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	fields := make([]string, len(columns))
	for i, b := range raw {
		fields[i] = string(b)
	}
	return fields, nil
}
