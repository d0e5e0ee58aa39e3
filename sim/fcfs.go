package sim

import "github.com/sirupsen/logrus"

// RunFCFS executes First-Come-First-Served scheduling: processes run to
// completion in arrival order, ties preserving original input order.
// Non-preemptive, so the timeline holds exactly one interval per process.
func (e *Engine) RunFCFS() error {
	if err := e.begin(); err != nil {
		return err
	}
	logrus.Infof("running fcfs over %d processes", len(e.procs))

	for _, p := range e.byArrival() {
		if e.clock < p.ArrivalTime {
			e.idleJump()
		}
		start := e.clock
		e.clock += p.BurstTime
		p.RemainingTime = 0
		p.CompletionTime = e.clock
		e.record(p.PID, start, e.clock)
	}

	e.deriveMetrics()
	return nil
}
