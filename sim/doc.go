// Package sim provides the core CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process record (static inputs + simulation-derived fields)
//   - engine.go: the Engine owning the clock, the working process copies, and the timeline
//   - algorithm.go: the closed set of scheduling algorithms and name dispatch
//
// # Architecture
//
// The Engine takes a private deep copy of the caller's process set at
// construction, runs exactly one algorithm over an integer simulated
// clock, and exposes two read-only views: the Gantt timeline (one
// Interval per contiguous CPU allocation) and the per-process metrics
// table. Each algorithm lives in its own file:
//   - fcfs.go: First-Come-First-Served
//   - sjf.go: non-preemptive Shortest-Job-First and Priority (shared selection scan)
//   - roundrobin.go: preemptive Round Robin over a FIFO ready queue (queue.go)
//
// An Engine is single-use: running a second algorithm on the same
// instance returns ErrRunAlreadyExecuted. Comparing algorithms means
// constructing one Engine per algorithm from the same input set; the
// construction-time copy makes that safe.
//
// Process-set acquisition (YAML specs, CSV traces, seeded random
// generation) lives in sim/workload; rendering lives in report.
package sim
