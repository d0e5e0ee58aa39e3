package sim

import "errors"

// Sentinel errors for the engine's failure conditions. Callers match
// with errors.Is; wrapped messages carry the offending values.
var (
	// ErrInvalidInput reports a non-positive burst time, a negative
	// arrival time, or a non-positive round-robin quantum. Always
	// detected at construction or algorithm entry, never mid-run.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyProcessSet reports metrics requested over zero processes.
	ErrEmptyProcessSet = errors.New("empty process set")

	// ErrRunAlreadyExecuted reports a second algorithm invocation on an
	// Engine whose timeline is already populated. Engines are single-use.
	ErrRunAlreadyExecuted = errors.New("run already executed")
)
