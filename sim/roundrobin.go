package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunRoundRobin executes preemptive Round Robin with the given quantum.
//
// Admission order is fixed by sorting on arrival time (ties: input
// order); rotation order is governed purely by the FIFO ready queue.
// After each slice, processes that arrived during (or exactly at the
// end of) the slice are admitted BEFORE the just-run process is
// re-queued, so a late arrival always gets its first turn ahead of a
// process returning with leftover work. That ordering is a deliberate
// fairness rule; see TestRoundRobin_ArrivalQueuesAheadOfRequeuedProcess.
func (e *Engine) RunRoundRobin(quantum int64) error {
	if quantum < 1 {
		return fmt.Errorf("%w: round-robin quantum must be >= 1, got %d", ErrInvalidInput, quantum)
	}
	if err := e.begin(); err != nil {
		return err
	}
	logrus.Infof("running rr (quantum=%d) over %d processes", quantum, len(e.procs))

	order := e.byArrival()
	ready := &ReadyQueue{}
	next := 0 // arrival cursor into order

	if len(order) > 0 {
		ready.Enqueue(order[next])
		next++
	}

	for ready.Len() > 0 {
		p := ready.Dequeue()

		slice := quantum
		if p.RemainingTime < slice {
			slice = p.RemainingTime
		}
		start := e.clock
		e.clock += slice
		p.RemainingTime -= slice
		e.record(p.PID, start, e.clock)

		// Admit everything that arrived by the end of this slice, in
		// arrival order, ahead of any re-queue of p.
		for next < len(order) && order[next].ArrivalTime <= e.clock {
			ready.Enqueue(order[next])
			next++
		}

		if p.RemainingTime > 0 {
			ready.Enqueue(p)
		} else {
			p.CompletionTime = e.clock
			logrus.Debugf("P%d completed at %d", p.PID, e.clock)
		}

		// Queue drained but processes still unarrived: idle-jump to the
		// next arrival and admit it.
		if ready.Len() == 0 && next < len(order) {
			e.idleJump()
			ready.Enqueue(order[next])
			next++
		}
	}

	e.deriveMetrics()
	return nil
}
