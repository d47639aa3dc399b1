package model

import (
	"testing"
)

func TestRecordNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   Record
		width    int
		expected Record
	}{
		{
			name:     "Exact width is unchanged",
			record:   NewRecord([]string{"1", "2"}),
			width:    2,
			expected: NewRecord([]string{"1", "2"}),
		},
		{
			name:     "Short record is right-padded",
			record:   NewRecord([]string{"3"}),
			width:    2,
			expected: NewRecord([]string{"3", ""}),
		},
		{
			name:     "Long record is right-truncated",
			record:   NewRecord([]string{"4", "5", "6"}),
			width:    2,
			expected: NewRecord([]string{"4", "5"}),
		},
		{
			name:     "Empty record is padded to width",
			record:   NewRecord(nil),
			width:    3,
			expected: NewRecord([]string{"", "", ""}),
		},
		{
			name:     "Zero width yields empty record",
			record:   NewRecord([]string{"a", "b"}),
			width:    0,
			expected: NewRecord([]string{}),
		},
		{
			name:     "Negative width is treated as zero",
			record:   NewRecord([]string{"a"}),
			width:    -1,
			expected: NewRecord([]string{}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.record.Normalize(tt.width)
			if len(got) != tt.width && tt.width >= 0 {
				t.Errorf("expected width %d, got %d", tt.width, len(got))
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRecordNormalizeDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	original := NewRecord([]string{"a", "b", "c"})
	_ = original.Normalize(2)

	if !original.Equal(NewRecord([]string{"a", "b", "c"})) {
		t.Errorf("receiver was mutated: %v", original)
	}
}

func TestHeaderEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header1  Header
		header2  Header
		expected bool
	}{
		{
			name:     "Equal headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1", "col2"}),
			expected: true,
		},
		{
			name:     "Different length headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1"}),
			expected: false,
		},
		{
			name:     "Different content headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1", "col3"}),
			expected: false,
		},
		{
			name:     "Empty headers",
			header1:  NewHeader([]string{}),
			header2:  NewHeader([]string{}),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.header1.Equal(tt.header2); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRecordEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record1  Record
		record2  Record
		expected bool
	}{
		{
			name:     "Equal records",
			record1:  NewRecord([]string{"1", "2"}),
			record2:  NewRecord([]string{"1", "2"}),
			expected: true,
		},
		{
			name:     "Different length records",
			record1:  NewRecord([]string{"1", "2"}),
			record2:  NewRecord([]string{"1"}),
			expected: false,
		},
		{
			name:     "Different content records",
			record1:  NewRecord([]string{"1", "2"}),
			record2:  NewRecord([]string{"1", "3"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.record1.Equal(tt.record2); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
