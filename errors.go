package csvdb

import "errors"

// Error kinds returned by a run. Component failures are wrapped so that
// errors.Is classification works across stage boundaries.
var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("csvdb: input file not found")

	// ErrFormat indicates no consistent field delimiter could be detected,
	// or the header row cannot form a usable schema.
	ErrFormat = errors.New("csvdb: unable to determine input format")

	// ErrParse indicates the input content could not be tokenized.
	ErrParse = errors.New("csvdb: malformed input content")

	// ErrStorage indicates a failure creating, populating, or reading the
	// destination table.
	ErrStorage = errors.New("csvdb: storage operation failed")
)

// Process exit codes reported by the CLI.
const (
	// ExitOK is the success exit code.
	ExitOK = 0
	// ExitInputNotFound is returned when the input path does not exist.
	ExitInputNotFound = 1
	// ExitFormat is returned for format and parse failures.
	ExitFormat = 2
	// ExitStorage is returned for storage failures.
	ExitStorage = 3
	// ExitUnexpected is returned for anything unclassified.
	ExitUnexpected = 4
)

// ExitCode maps an error returned by a run onto the process exit code
// contract. A nil error maps to ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrFormat), errors.Is(err, ErrParse):
		return ExitFormat
	case errors.Is(err, ErrStorage):
		return ExitStorage
	default:
		return ExitUnexpected
	}
}
