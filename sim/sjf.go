package sim

import "github.com/sirupsen/logrus"

// RunSJF executes non-preemptive Shortest-Job-First: at each decision
// point the ready process with the smallest burst time runs to
// completion. Ties go to the earliest original input position.
// Long processes can starve under a steady supply of short ones.
func (e *Engine) RunSJF() error {
	if err := e.begin(); err != nil {
		return err
	}
	logrus.Infof("running sjf over %d processes", len(e.procs))
	e.runNonPreemptive(func(cand, best *Process) bool {
		return cand.BurstTime < best.BurstTime
	})
	return nil
}

// RunPriority executes non-preemptive Priority scheduling: identical
// control structure to SJF, selecting the smallest priority value
// (lower = more urgent) instead of the smallest burst.
func (e *Engine) RunPriority() error {
	if err := e.begin(); err != nil {
		return err
	}
	logrus.Infof("running priority over %d processes", len(e.procs))
	e.runNonPreemptive(func(cand, best *Process) bool {
		return cand.Priority < best.Priority
	})
	return nil
}

// runNonPreemptive is the shared decision loop for SJF and Priority.
// better must be a strict comparison: scanning in input order with a
// strict test makes the first-encountered process win every tie, which
// keeps the schedule deterministic regardless of pid numbering.
func (e *Engine) runNonPreemptive(better func(cand, best *Process) bool) {
	remaining := len(e.procs)
	for remaining > 0 {
		var pick *Process
		for _, p := range e.procs {
			if p.RemainingTime == 0 || p.ArrivalTime > e.clock {
				continue
			}
			if pick == nil || better(p, pick) {
				pick = p
			}
		}

		if pick == nil {
			// Nothing has arrived yet: jump to the next arrival and re-decide.
			e.idleJump()
			continue
		}

		start := e.clock
		e.clock += pick.BurstTime
		pick.RemainingTime = 0
		pick.CompletionTime = e.clock
		e.record(pick.PID, start, e.clock)
		remaining--
	}

	e.deriveMetrics()
}
