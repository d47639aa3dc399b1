package model

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTempFile writes content under t.TempDir and returns the path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestToTableDelimited(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		fileName        string
		content         string
		expectedHeader  Header
		expectedRecords []Record
		expectedDelim   rune
	}{
		{
			name:           "Comma separated with variable widths",
			fileName:       "data.csv",
			content:        "a,b\n1,2\n3\n4,5,6\n",
			expectedHeader: NewHeader([]string{"a", "b"}),
			expectedRecords: []Record{
				NewRecord([]string{"1", "2"}),
				NewRecord([]string{"3"}),
				NewRecord([]string{"4", "5", "6"}),
			},
			expectedDelim: ',',
		},
		{
			name:           "Semicolon separated",
			fileName:       "data.txt",
			content:        "id;name\n1;Alice\n",
			expectedHeader: NewHeader([]string{"id", "name"}),
			expectedRecords: []Record{
				NewRecord([]string{"1", "Alice"}),
			},
			expectedDelim: ';',
		},
		{
			name:           "Quoted field with embedded delimiter",
			fileName:       "data.csv",
			content:        "id,name\n1,\"Smith, Alice\"\n",
			expectedHeader: NewHeader([]string{"id", "name"}),
			expectedRecords: []Record{
				NewRecord([]string{"1", "Smith, Alice"}),
			},
			expectedDelim: ',',
		},
		{
			name:            "Header only",
			fileName:        "data.csv",
			content:         "a,b\n",
			expectedHeader:  NewHeader([]string{"a", "b"}),
			expectedRecords: nil,
			expectedDelim:   ',',
		},
		{
			name:           "All-empty row is preserved",
			fileName:       "data.csv",
			content:        "a,b\n,\n",
			expectedHeader: NewHeader([]string{"a", "b"}),
			expectedRecords: []Record{
				NewRecord([]string{"", ""}),
			},
			expectedDelim: ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tt.fileName, tt.content)
			table, err := NewFile(path).ToTable()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !table.Header().Equal(tt.expectedHeader) {
				t.Errorf("expected header %v, got %v", tt.expectedHeader, table.Header())
			}
			if len(table.Records()) != len(tt.expectedRecords) {
				t.Fatalf("expected %d records, got %d", len(tt.expectedRecords), len(table.Records()))
			}
			for i, expected := range tt.expectedRecords {
				if !table.Records()[i].Equal(expected) {
					t.Errorf("record %d: expected %v, got %v", i, expected, table.Records()[i])
				}
			}
			if table.Delimiter() != tt.expectedDelim {
				t.Errorf("expected delimiter %q, got %q", tt.expectedDelim, table.Delimiter())
			}
		})
	}
}

func TestToTableDelimitedErrors(t *testing.T) {
	t.Parallel()

	t.Run("Empty file has no delimiter", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "empty.csv", "")
		_, err := NewFile(path).ToTable()
		if !errors.Is(err, ErrNoDelimiter) {
			t.Errorf("expected ErrNoDelimiter, got %v", err)
		}
	})

	t.Run("Unstructured text has no delimiter", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "prose.txt", "once upon a time\nthere was no table\n")
		_, err := NewFile(path).ToTable()
		if !errors.Is(err, ErrNoDelimiter) {
			t.Errorf("expected ErrNoDelimiter, got %v", err)
		}
	})

	t.Run("Bare quote inside field fails tokenization", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "bad.csv", "a,b\n1,\"2\n")
		_, err := NewFile(path).ToTable()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var parseErr *csv.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("expected csv.ParseError, got %v", err)
		}
	})
}

func TestToTableXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"id", "name", "score"},
		{1, "Alice", 9.5},
		{2, "Bob", nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	table, err := NewFile(path).ToTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !table.Header().Equal(NewHeader([]string{"id", "name", "score"})) {
		t.Errorf("unexpected header: %v", table.Header())
	}
	if len(table.Records()) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records()))
	}
	if table.Records()[0][0] != "1" || table.Records()[0][1] != "Alice" {
		t.Errorf("unexpected first record: %v", table.Records()[0])
	}
	if table.Delimiter() != 0 {
		t.Errorf("expected no delimiter for XLSX, got %q", table.Delimiter())
	}
}

func TestTableEqual(t *testing.T) {
	t.Parallel()

	base := NewTable(NewHeader([]string{"a"}), []Record{NewRecord([]string{"1"})})

	tests := []struct {
		name     string
		other    *Table
		expected bool
	}{
		{
			name:     "Same contents",
			other:    NewTable(NewHeader([]string{"a"}), []Record{NewRecord([]string{"1"})}),
			expected: true,
		},
		{
			name:     "Different header",
			other:    NewTable(NewHeader([]string{"b"}), []Record{NewRecord([]string{"1"})}),
			expected: false,
		},
		{
			name:     "Different record count",
			other:    NewTable(NewHeader([]string{"a"}), nil),
			expected: false,
		},
		{
			name:     "Different record content",
			other:    NewTable(NewHeader([]string{"a"}), []Record{NewRecord([]string{"2"})}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := base.Equal(tt.other); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
