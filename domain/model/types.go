// Package model provides the domain model for csvdb: input files, delimiter
// detection, header sanitization, and the in-memory table produced by parsing
// an input file before it is loaded into SQLite.
package model

// Header is the raw header row of an input file, one entry per column.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record is one data row of an input file. Field counts vary per row until
// Normalize is applied.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// Normalize returns a copy of the record with exactly width fields. Short
// records are right-padded with empty strings and long records are truncated
// on the right. The receiver is never modified.
func (r Record) Normalize(width int) Record {
	if width < 0 {
		width = 0
	}
	normalized := make(Record, width)
	copy(normalized, r)
	return normalized
}
