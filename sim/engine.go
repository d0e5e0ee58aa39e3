// sim/engine.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Interval is one contiguous, uninterrupted CPU allocation to a single
// process. The ordered interval sequence is the Gantt timeline; adjacent
// intervals for the same process are never merged.
type Interval struct {
	PID   int64
	Start int64
	End   int64
}

// Engine is the core object that holds simulation time, the private
// working copy of the process set, and the resulting timeline.
//
// The copy is taken at construction, so running several algorithms
// against the same logical input means one Engine per algorithm; the
// caller's records are never aliased or mutated. An Engine is
// single-use: the first Run* call consumes it.
type Engine struct {
	// clock is the simulated time in ticks, monotonically non-decreasing.
	// When no process is ready it jumps directly to the next arrival
	// rather than stepping tick by tick.
	clock int64
	// procs holds the private copies in original input order. That order
	// is load-bearing: SJF and Priority break ties by first-encountered
	// scan position, not by pid.
	procs    []*Process
	timeline []Interval
	ran      bool
}

// NewEngine constructs an Engine over a deep copy of the given process
// set. Nil entries are rejected; an empty set is accepted (algorithms
// complete trivially, metrics fail with ErrEmptyProcessSet).
func NewEngine(processes []*Process) (*Engine, error) {
	procs := make([]*Process, len(processes))
	for i, p := range processes {
		if p == nil {
			return nil, fmt.Errorf("%w: process at index %d is nil", ErrInvalidInput, i)
		}
		procs[i] = p.clone()
	}
	return &Engine{
		clock:    0,
		procs:    procs,
		timeline: make([]Interval, 0, len(procs)),
	}, nil
}

// Run dispatches to the named algorithm. The quantum is only consulted
// for round robin; the non-preemptive algorithms ignore it.
func (e *Engine) Run(algo Algorithm, quantum int64) error {
	switch algo {
	case AlgorithmFCFS:
		return e.RunFCFS()
	case AlgorithmSJF:
		return e.RunSJF()
	case AlgorithmPriority:
		return e.RunPriority()
	case AlgorithmRoundRobin:
		return e.RunRoundRobin(quantum)
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, algo)
	}
}

// begin enforces the single-use contract. Every Run* method calls it
// before touching state, after its own input validation.
func (e *Engine) begin() error {
	if e.ran {
		return fmt.Errorf("%w: engine already holds a timeline; construct a fresh engine", ErrRunAlreadyExecuted)
	}
	e.ran = true
	return nil
}

// record appends one execution interval to the timeline.
func (e *Engine) record(pid, start, end int64) {
	logrus.Debugf("<< P%d runs [%d, %d)", pid, start, end)
	e.timeline = append(e.timeline, Interval{PID: pid, Start: start, End: end})
}

// idleJump advances the clock to the earliest arrival among unfinished
// processes. Called only when no process is ready at the current clock;
// an O(1)-per-decision jump, never a tick-by-tick busy wait.
func (e *Engine) idleJump() {
	next := int64(-1)
	for _, p := range e.procs {
		if p.RemainingTime > 0 && (next == -1 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	if next > e.clock {
		logrus.Debugf("cpu idle: clock %d -> %d", e.clock, next)
		e.clock = next
	}
}

// byArrival returns the working copies stably sorted by arrival time,
// ties preserving original input order. The engine's own slice keeps
// input order untouched.
func (e *Engine) byArrival() []*Process {
	order := make([]*Process, len(e.procs))
	copy(order, e.procs)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].ArrivalTime < order[j].ArrivalTime
	})
	return order
}

// deriveMetrics fills in turnaround and waiting time once every process
// has completed:
//
//	turnaround = completion - arrival
//	waiting    = turnaround - burst
//
// Runs exactly once, after the algorithm's main loop.
func (e *Engine) deriveMetrics() {
	for _, p := range e.procs {
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
}

// Timeline returns the Gantt sequence in chronological order. The
// returned slice is a copy; mutating it does not affect the engine.
func (e *Engine) Timeline() []Interval {
	out := make([]Interval, len(e.timeline))
	copy(out, e.timeline)
	return out
}

// ProcessesByPID returns copies of the run's process records sorted by
// pid ascending, for the per-process results table.
func (e *Engine) ProcessesByPID() []*Process {
	out := make([]*Process, len(e.procs))
	for i, p := range e.procs {
		cp := *p
		out[i] = &cp
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// AverageWaitingTime returns the arithmetic mean of waiting time over
// all processes in the run.
func (e *Engine) AverageWaitingTime() (float64, error) {
	if len(e.procs) == 0 {
		return 0, fmt.Errorf("%w: no processes to average over", ErrEmptyProcessSet)
	}
	var sum int64
	for _, p := range e.procs {
		sum += p.WaitingTime
	}
	return float64(sum) / float64(len(e.procs)), nil
}

// AverageTurnaroundTime returns the arithmetic mean of turnaround time
// over all processes in the run.
func (e *Engine) AverageTurnaroundTime() (float64, error) {
	if len(e.procs) == 0 {
		return 0, fmt.Errorf("%w: no processes to average over", ErrEmptyProcessSet)
	}
	var sum int64
	for _, p := range e.procs {
		sum += p.TurnaroundTime
	}
	return float64(sum) / float64(len(e.procs)), nil
}
