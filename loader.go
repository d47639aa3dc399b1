package csvdb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nao1215/csvdb/domain/model"
	"github.com/nao1215/csvdb/internal/storage"
)

// load parses the input, derives the schema from its header, and populates
// the destination table in one transaction: drop any previous table, create
// it from the schema, insert every width-normalized record, commit. The
// input is parsed before the database file is opened, so a format or parse
// failure never creates the database.
func (j *Job) load(ctx context.Context) error {
	table, err := j.input.ToTable()
	if err != nil {
		return classifyInputError(err)
	}

	schema, err := model.DeriveSchema(table.Header())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	j.schema = schema

	db, err := storage.Open(j.dbPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	j.db = db

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrStorage, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, storage.DropTableSQL(j.tableName)); err != nil {
		return fmt.Errorf("%w: failed to drop table '%s': %w", ErrStorage, j.tableName, err)
	}
	if _, err := tx.ExecContext(ctx, storage.CreateTableSQL(j.tableName, schema.Names())); err != nil {
		return fmt.Errorf("%w: failed to create table '%s': %w", ErrStorage, j.tableName, err)
	}

	stmt, err := tx.PrepareContext(ctx, storage.InsertSQL(j.tableName, len(schema)))
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %w", ErrStorage, err)
	}
	defer stmt.Close()

	for _, record := range table.Records() {
		normalized := record.Normalize(len(schema))
		values := make([]any, len(normalized))
		for i, value := range normalized {
			values[i] = value
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("%w: failed to insert record: %w", ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %w", ErrStorage, err)
	}

	j.result.Columns = schema.Names()
	j.result.Delimiter = table.Delimiter()
	j.result.RowsLoaded = len(table.Records())
	j.printf("Successfully loaded %d rows into table '%s'\n", j.result.RowsLoaded, j.tableName)
	return nil
}

// classifyInputError maps a parse failure onto the error taxonomy: a
// vanished input is InputNotFound, an undetectable delimiter or unusable
// structure is ErrFormat, and any other failure to read or decode the
// content is ErrParse.
func classifyInputError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrInputNotFound, err)
	case errors.Is(err, model.ErrNoDelimiter), errors.Is(err, model.ErrEmptyFile):
		return fmt.Errorf("%w: %w", ErrFormat, err)
	default:
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
}
