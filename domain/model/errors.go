package model

import "errors"

var (
	// ErrNoDelimiter is returned when no consistent field delimiter can be
	// inferred from an input sample.
	ErrNoDelimiter = errors.New("model: no consistent delimiter detected")

	// ErrEmptyFile is returned when an input contains no rows at all.
	ErrEmptyFile = errors.New("model: empty input file")

	// ErrEmptyHeader is returned when a header row has no fields.
	ErrEmptyHeader = errors.New("model: header has no fields")

	// ErrDuplicateColumn is returned when two header fields sanitize to the
	// same column name.
	ErrDuplicateColumn = errors.New("model: duplicate column name")
)
