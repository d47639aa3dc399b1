package model

import (
	"fmt"
	"strings"
)

// SniffSampleSize is the number of leading bytes inspected when detecting
// the field delimiter of a delimited text input.
const SniffSampleSize = 1024

// delimiterCandidates are tried in preference order when counts tie.
var delimiterCandidates = []rune{',', '\t', ';', '|'}

// DetectDelimiter inspects a leading sample of a delimited text input and
// returns the field separator. A candidate is viable when it appears the
// same non-zero number of times on every sampled line, counting only
// occurrences outside double-quoted regions. The viable candidate with the
// highest per-line count wins. ErrNoDelimiter is returned when the sample is
// empty or no candidate is consistent.
func DetectDelimiter(sample []byte) (rune, error) {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: empty sample", ErrNoDelimiter)
	}

	var best rune
	bestCount := 0
	for _, candidate := range delimiterCandidates {
		count, ok := consistentCount(lines, candidate)
		if ok && count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	if bestCount == 0 {
		return 0, ErrNoDelimiter
	}
	return best, nil
}

// sampleLines splits the sample into complete non-empty lines. When the
// sample ends mid-line and at least one full line precedes it, the trailing
// fragment is discarded so a truncated row cannot skew the counts.
func sampleLines(sample []byte) []string {
	text := string(sample)
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	if !strings.HasSuffix(text, "\n") && len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// consistentCount reports how many times the candidate appears per line,
// and whether that count is non-zero and identical across all lines.
func consistentCount(lines []string, candidate rune) (int, bool) {
	count := unquotedCount(lines[0], candidate)
	if count == 0 {
		return 0, false
	}
	for _, line := range lines[1:] {
		if unquotedCount(line, candidate) != count {
			return 0, false
		}
	}
	return count, true
}

// unquotedCount counts occurrences of the candidate outside double-quoted
// regions. Quote state is tracked per line.
func unquotedCount(line string, candidate rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == candidate && !inQuotes:
			count++
		}
	}
	return count
}
