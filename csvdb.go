package csvdb

import (
	"context"
	"errors"
)

// runState names a stage of the pipeline. A run advances through the stages
// in order and always passes through stateClose before finishing, no matter
// which stage failed.
type runState int

const (
	stateResolveInput runState = iota
	stateLoad
	stateValidate
	stateReport
	stateClose
	stateDone
)

// Run executes the pipeline against the configured input: resolve the input
// file, load its rows into SQLite, validate the stored data, print the
// report, and close the database. It returns a Result describing what was
// loaded. The database handle is closed exactly once on every path out of
// the loop; the deferred close is a guard for paths that never reach
// stateClose and is a no-op otherwise.
func (j *Job) Run(ctx context.Context) (_ *Result, err error) {
	j.result = &Result{}

	defer func() {
		err = errors.Join(err, j.closeStorage())
	}()

	state := stateResolveInput
	for state != stateDone {
		switch state {
		case stateResolveInput:
			if err = j.resolveInput(); err != nil {
				state = stateClose
				continue
			}
			state = stateLoad
		case stateLoad:
			if err = j.load(ctx); err != nil {
				state = stateClose
				continue
			}
			state = stateValidate
		case stateValidate:
			if err = j.validate(ctx); err != nil {
				state = stateClose
				continue
			}
			state = stateReport
		case stateReport:
			err = j.report(ctx)
			state = stateClose
		case stateClose:
			err = errors.Join(err, j.closeStorage())
			state = stateDone
		}
	}

	if err != nil {
		return nil, err
	}
	return j.result, nil
}

// Run loads the file at inputPath into a SQLite database in the working
// directory and prints the validation report to stdout. It is shorthand for
// building a Job with default settings and running it.
func Run(ctx context.Context, inputPath string) (*Result, error) {
	job, err := NewBuilder().SetInput(inputPath).Build()
	if err != nil {
		return nil, err
	}
	return job.Run(ctx)
}
