package csvdb

import (
	"context"
	"fmt"

	"github.com/nao1215/csvdb/internal/storage"
)

// sampleRowCount is the number of rows read back as a liveness check.
const sampleRowCount = 5

// validate runs the read-only post-load checks: the total row count, the
// count of completely empty rows, and a bounded sample read. An empty-row
// count is only a warning; any storage failure aborts the run.
func (j *Job) validate(ctx context.Context) error {
	var total int
	if err := j.db.QueryRowContext(ctx, storage.CountSQL(j.tableName)).Scan(&total); err != nil {
		return fmt.Errorf("%w: failed to count rows: %w", ErrStorage, err)
	}
	j.result.TotalRows = total
	j.printf("Validation: Found %d total rows in database\n", total)

	var empty int
	if err := j.db.QueryRowContext(ctx, storage.CountEmptySQL(j.tableName, j.schema.Names())).Scan(&empty); err != nil {
		return fmt.Errorf("%w: failed to count empty rows: %w", ErrStorage, err)
	}
	j.result.EmptyRows = empty
	if empty > 0 {
		j.printf("Warning: Found %d completely empty rows\n", empty)
	}

	rows, err := j.db.QueryContext(ctx, storage.SampleSQL(j.tableName, sampleRowCount))
	if err != nil {
		return fmt.Errorf("%w: failed to read sample rows: %w", ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		if _, err := scanTextRow(rows); err != nil {
			return fmt.Errorf("%w: failed to scan sample row: %w", ErrStorage, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: failed to iterate sample rows: %w", ErrStorage, err)
	}

	j.printf("Validation: Sample of first %d rows verified successfully\n", sampleRowCount)
	return nil
}
