package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sched-sim/sched-sim/report"
	"github.com/sched-sim/sched-sim/sim"
)

var compareQuantum int64 // Round-robin quantum for the comparison run

// compareCmd runs all four algorithms over the same input set, each on
// its own engine, and prints per-algorithm results plus a summary table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all four algorithms over the same process set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		procs := loadProcesses()

		out := cmd.OutOrStdout()
		summaries := make([]*sim.Metrics, 0, len(sim.Algorithms()))
		for _, algo := range sim.Algorithms() {
			// Fresh engine per algorithm: each run starts from pristine
			// remaining times and an empty timeline.
			engine, err := sim.NewEngine(procs)
			if err != nil {
				logrus.Fatalf("unable to construct engine: %v", err)
			}
			if err := engine.Run(algo, compareQuantum); err != nil {
				logrus.Fatalf("%s simulation failed: %v", algo, err)
			}
			metrics, err := engine.Summary(algo)
			if err != nil {
				logrus.Fatalf("unable to compute %s metrics: %v", algo, err)
			}
			summaries = append(summaries, metrics)

			report.WriteTitle(out, algo.Description())
			report.WriteTable(out, engine.ProcessesByPID(), metrics.AvgWaitingTime, metrics.AvgTurnaroundTime)
			report.WriteGantt(out, engine.Timeline())
			fmt.Fprintln(out, "Execution order: "+report.ExecutionOrder(engine.Timeline()))
			fmt.Fprintln(out)
		}

		report.WriteTitle(out, "Algorithm Comparison")
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Makespan", "Context Switches"})
		for _, m := range summaries {
			table.Append([]string{
				string(m.Algorithm),
				fmt.Sprintf("%.2f", m.AvgWaitingTime),
				fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
				fmt.Sprint(m.Makespan),
				fmt.Sprint(m.ContextSwitches),
			})
		}
		table.Render()
	},
}

func init() {
	addWorkloadFlags(compareCmd)
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", 2, "Round-robin time quantum")

	rootCmd.AddCommand(compareCmd)
}
