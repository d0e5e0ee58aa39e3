package sim

import "fmt"

// Algorithm names one of the four scheduling policies. The set is
// closed and known at compile time; dispatch is a switch, not a
// plugin registry.
type Algorithm string

const (
	// AlgorithmFCFS runs processes in arrival order, non-preemptive.
	AlgorithmFCFS Algorithm = "fcfs"
	// AlgorithmSJF picks the shortest ready burst, non-preemptive.
	AlgorithmSJF Algorithm = "sjf"
	// AlgorithmPriority picks the lowest ready priority value, non-preemptive.
	AlgorithmPriority Algorithm = "priority"
	// AlgorithmRoundRobin time-slices ready processes, preemptive.
	AlgorithmRoundRobin Algorithm = "rr"
)

// validAlgorithms maps accepted algorithm name strings.
var validAlgorithms = map[Algorithm]bool{
	AlgorithmFCFS:       true,
	AlgorithmSJF:        true,
	AlgorithmPriority:   true,
	AlgorithmRoundRobin: true,
}

// Algorithms lists the four policies in their canonical order, for
// comparison runs and CLI help text.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}
}

// ParseAlgorithm maps a CLI name to an Algorithm.
// Valid names: "fcfs", "sjf", "priority", "rr".
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !validAlgorithms[a] {
		return "", fmt.Errorf("%w: unknown algorithm %q (valid: fcfs, sjf, priority, rr)", ErrInvalidInput, name)
	}
	return a, nil
}

// Description returns the long-form name used in report titles.
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmFCFS:
		return "First-Come-First-Served (FCFS)"
	case AlgorithmSJF:
		return "Shortest-Job-First (SJF)"
	case AlgorithmPriority:
		return "Priority Scheduling"
	case AlgorithmRoundRobin:
		return "Round Robin (RR)"
	default:
		return string(a)
	}
}
