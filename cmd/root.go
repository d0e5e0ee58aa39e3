package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sched-sim/sched-sim/report"
	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/workload"
)

var (
	// CLI flags shared by run and compare
	logLevel     string // Log verbosity level
	workloadPath string // YAML workload spec path
	tracePath    string // CSV process trace path
	outputBase   string // Base path for CSV result export ("" = no export)

	// Random generation flags (used when no workload/trace file is given)
	generateCount int   // Number of processes to generate (0 = use sample set)
	seed          int64 // Seed for random process generation
	maxArrival    int64 // Upper bound for generated arrival times
	minBurst      int64 // Lower bound for generated burst times
	maxBurst      int64 // Upper bound for generated burst times
	maxPriority   int64 // Upper bound for generated priority values

	// run-only flags
	algorithmName string // Scheduling algorithm name
	quantum       int64  // Round-robin time quantum
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "CPU scheduling simulator for FCFS, SJF, Priority and Round Robin",
}

// loadProcesses resolves the process set from the input flags, in
// precedence order: YAML spec, CSV trace, random generation, sample set.
func loadProcesses() []*sim.Process {
	switch {
	case workloadPath != "":
		spec, err := workload.LoadSpec(workloadPath)
		if err != nil {
			logrus.Fatalf("unable to read workload spec: %v", err)
		}
		procs, err := spec.Build()
		if err != nil {
			logrus.Fatalf("invalid workload spec: %v", err)
		}
		return procs
	case tracePath != "":
		procs, err := workload.LoadCSV(tracePath)
		if err != nil {
			logrus.Fatalf("unable to read csv trace: %v", err)
		}
		return procs
	case generateCount > 0:
		procs, err := workload.Generate(workload.GeneratorConfig{
			Count:       generateCount,
			Seed:        seed,
			MaxArrival:  maxArrival,
			MinBurst:    minBurst,
			MaxBurst:    maxBurst,
			MaxPriority: maxPriority,
		})
		if err != nil {
			logrus.Fatalf("unable to generate workload: %v", err)
		}
		return procs
	default:
		logrus.Info("no workload given, using built-in sample process set")
		return workload.SampleProcesses()
	}
}

// setupLogging applies the --log flag before any command runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes one scheduling algorithm using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm over the process set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		algo, err := sim.ParseAlgorithm(algorithmName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		procs := loadProcesses()

		engine, err := sim.NewEngine(procs)
		if err != nil {
			logrus.Fatalf("unable to construct engine: %v", err)
		}
		if err := engine.Run(algo, quantum); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		metrics, err := engine.Summary(algo)
		if err != nil {
			logrus.Fatalf("unable to compute metrics: %v", err)
		}

		out := cmd.OutOrStdout()
		report.WriteTitle(out, algo.Description())
		report.WriteTable(out, engine.ProcessesByPID(), metrics.AvgWaitingTime, metrics.AvgTurnaroundTime)
		report.WriteGantt(out, engine.Timeline())
		fmt.Fprintln(out, "Execution order: "+report.ExecutionOrder(engine.Timeline()))
		metrics.Print()

		if outputBase != "" {
			if err := report.SaveResults(outputBase, engine.ProcessesByPID(), engine.Timeline()); err != nil {
				logrus.Fatalf("unable to export results: %v", err)
			}
			logrus.Infof("results written to %s_processes.csv and %s_timeline.csv", outputBase, outputBase)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addWorkloadFlags registers the process-set input flags on a command.
func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logLevel, "log", "warning", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&workloadPath, "workload", "", "YAML workload spec path")
	cmd.Flags().StringVar(&tracePath, "trace", "", "CSV process trace path (pid,arrival,burst,priority)")
	cmd.Flags().StringVar(&outputBase, "output", "", "Base path for CSV result export")

	cmd.Flags().IntVar(&generateCount, "generate", 0, "Generate N random processes instead of reading a file")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random process generation")
	cmd.Flags().Int64Var(&maxArrival, "max-arrival", 10, "Max generated arrival time")
	cmd.Flags().Int64Var(&minBurst, "min-burst", 1, "Min generated burst time")
	cmd.Flags().Int64Var(&maxBurst, "max-burst", 10, "Max generated burst time")
	cmd.Flags().Int64Var(&maxPriority, "max-priority", 5, "Max generated priority value")
}

// init sets up CLI flags and subcommands
func init() {
	addWorkloadFlags(runCmd)
	runCmd.Flags().StringVar(&algorithmName, "algorithm", "fcfs", "Scheduling algorithm (fcfs, sjf, priority, rr)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 2, "Round-robin time quantum (rr only)")

	rootCmd.AddCommand(runCmd)
}
