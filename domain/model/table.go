package model

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table represents parsed input contents before loading: the raw header row
// and the data records that follow it.
type Table struct {
	header    Header
	records   []Record
	delimiter rune
}

// NewTable create new Table.
func NewTable(header Header, records []Record) *Table {
	return &Table{
		header:  header,
		records: records,
	}
}

// Header return table header.
func (t *Table) Header() Header {
	return t.header
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// Delimiter returns the detected field separator for delimited text inputs,
// and 0 for XLSX and Parquet inputs.
func (t *Table) Delimiter() rune {
	return t.delimiter
}

// Equal compare Table.
func (t *Table) Equal(t2 *Table) bool {
	if !t.header.Equal(t2.header) {
		return false
	}
	if len(t.records) != len(t2.records) {
		return false
	}
	for i, record := range t.records {
		if !record.Equal(t2.records[i]) {
			return false
		}
	}
	return true
}

// ToTable parses the file into a Table. The first row is always treated as
// the header; remaining rows are data records with their original field
// counts preserved.
func (f *File) ToTable() (*Table, error) {
	switch f.fileType {
	case FileTypeXLSX:
		return f.parseXLSX()
	case FileTypeParquet:
		return f.parseParquet()
	default:
		return f.parseDelimited()
	}
}

// parseDelimited reads the whole input, detects the field separator from the
// leading sample, and tokenizes the content with encoding/csv. Rows keep
// their original width; normalization happens at load time.
func (f *File) parseDelimited() (*Table, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer closer()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	sample := content
	if len(sample) > SniffSampleSize {
		sample = sample[:SniffSampleSize]
	}
	delimiter, err := DetectDelimiter(sample)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bytes.NewReader(content))
	csvReader.Comma = delimiter
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, f.path)
	}

	header := NewHeader(records[0])
	tableRecords := make([]Record, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		tableRecords = append(tableRecords, NewRecord(records[i]))
	}

	table := NewTable(header, tableRecords)
	table.delimiter = delimiter
	return table, nil
}

// parseXLSX parses the first sheet of an XLSX file. excelize buffers the
// whole workbook, so the decompressed reader can be handed over directly.
func (f *File) parseXLSX() (*Table, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer closer()

	xlsxFile, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer xlsxFile.Close()

	sheets := xlsxFile.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, f.path)
	}

	rows, err := xlsxFile.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, f.path)
	}

	header := NewHeader(rows[0])
	tableRecords := make([]Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		tableRecords = append(tableRecords, NewRecord(rows[i]))
	}

	return NewTable(header, tableRecords), nil
}
