package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sched-sim/sched-sim/sim"
)

// WriteProcessCSV writes the per-process metrics table with a header row:
//
//	pid,arrival,burst,priority,completion,turnaround,waiting
func WriteProcessCSV(w io.Writer, procs []*sim.Process) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"pid", "arrival", "burst", "priority", "completion", "turnaround", "waiting"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range procs {
		row := []string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for pid %d: %w", p.PID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTimelineCSV writes the Gantt sequence with a header row:
//
//	pid,start,end
func WriteTimelineCSV(w io.Writer, timeline []sim.Interval) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"pid", "start", "end"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, iv := range timeline {
		if err := cw.Write([]string{fmt.Sprint(iv.PID), fmt.Sprint(iv.Start), fmt.Sprint(iv.End)}); err != nil {
			return fmt.Errorf("writing csv row for pid %d: %w", iv.PID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveResults writes both CSV views next to each other:
// <base>_processes.csv and <base>_timeline.csv.
func SaveResults(base string, procs []*sim.Process, timeline []sim.Interval) error {
	pf, err := os.Create(base + "_processes.csv")
	if err != nil {
		return fmt.Errorf("creating process csv: %w", err)
	}
	defer pf.Close()
	if err := WriteProcessCSV(pf, procs); err != nil {
		return err
	}

	tf, err := os.Create(base + "_timeline.csv")
	if err != nil {
		return fmt.Errorf("creating timeline csv: %w", err)
	}
	defer tf.Close()
	return WriteTimelineCSV(tf, timeline)
}
