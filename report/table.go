// Package report renders a completed run's read-only views (the Gantt
// timeline and the per-process metrics table) as text, tables, and CSV.
// It consumes engine output only; no scheduling logic lives here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sched-sim/sched-sim/sim"
)

// WriteTitle prints a banner line for the algorithm's results section.
func WriteTitle(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", 72))
}

// WriteTable renders the per-process results table, pid-ascending, with
// average waiting and turnaround time in the footer.
func WriteTable(w io.Writer, procs []*sim.Process, avgWaiting, avgTurnaround float64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting"})
	for _, p := range procs {
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", avgTurnaround),
		fmt.Sprintf("%.2f", avgWaiting)})
	table.Render()
}

// ExecutionOrder returns the timeline as a "P1 -> P2 -> P1" chain.
func ExecutionOrder(timeline []sim.Interval) string {
	if len(timeline) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(timeline))
	for i, iv := range timeline {
		parts[i] = fmt.Sprintf("P%d", iv.PID)
	}
	return strings.Join(parts, " -> ")
}
