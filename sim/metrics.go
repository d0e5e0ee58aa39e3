// Aggregates run-wide performance metrics for final reporting.

package sim

import "fmt"

// Metrics summarizes one completed simulation run. Useful for
// comparing algorithms over the same process set.
type Metrics struct {
	Algorithm         Algorithm
	CompletedCount    int     // Number of processes completed
	TotalBurstTime    int64   // Sum of all burst times
	Makespan          int64   // End of the last timeline interval
	ContextSwitches   int     // Interval count minus one (0 for empty runs)
	AvgWaitingTime    float64 // Mean waiting time across processes
	AvgTurnaroundTime float64 // Mean turnaround time across processes
}

// Summary computes the run-level Metrics for a completed engine.
// Fails with ErrEmptyProcessSet when there is nothing to average.
func (e *Engine) Summary(algo Algorithm) (*Metrics, error) {
	avgWait, err := e.AverageWaitingTime()
	if err != nil {
		return nil, err
	}
	avgTurn, err := e.AverageTurnaroundTime()
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		Algorithm:         algo,
		CompletedCount:    len(e.procs),
		AvgWaitingTime:    avgWait,
		AvgTurnaroundTime: avgTurn,
	}
	for _, p := range e.procs {
		m.TotalBurstTime += p.BurstTime
	}
	if n := len(e.timeline); n > 0 {
		m.Makespan = e.timeline[n-1].End
		m.ContextSwitches = n - 1
	}
	return m, nil
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Algorithm            : %s\n", m.Algorithm.Description())
	fmt.Printf("Completed Processes  : %d\n", m.CompletedCount)
	fmt.Printf("Total Burst Time     : %d ticks\n", m.TotalBurstTime)
	fmt.Printf("Makespan             : %d ticks\n", m.Makespan)
	fmt.Printf("Context Switches     : %d\n", m.ContextSwitches)
	fmt.Printf("Average Waiting      : %.2f ticks\n", m.AvgWaitingTime)
	fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaroundTime)
}
