// Defines the Process struct that models an individual task in the simulation.
// Static inputs are set at construction; the derived fields are written only
// by the Engine while an algorithm runs.

package sim

import (
	"fmt"
)

// Process models a single task's lifecycle in the simulation.
// Each process has:
// - static inputs: pid, arrival time, burst time, priority (lower value = more urgent)
// - remaining time, decremented as the CPU executes it
// - completion/turnaround/waiting timestamps filled in by the metric pass
type Process struct {
	PID         int64 // Unique identifier, assigned by the caller
	ArrivalTime int64 // Tick at which the process enters the ready pool (>= 0)
	BurstTime   int64 // Total CPU ticks required to complete (> 0)
	Priority    int64 // Lower value = higher priority; 0 = no preference

	RemainingTime  int64 // Burst ticks still owed; reaches 0 exactly once
	CompletionTime int64 // Tick at which the process finished
	TurnaroundTime int64 // CompletionTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime
}

// NewProcess validates the static inputs and returns a pristine record
// with RemainingTime initialized to BurstTime. Derived fields are always
// computed by the engine, never supplied.
func NewProcess(pid, arrivalTime, burstTime, priority int64) (*Process, error) {
	if burstTime <= 0 {
		return nil, fmt.Errorf("%w: process %d burst time must be > 0, got %d", ErrInvalidInput, pid, burstTime)
	}
	if arrivalTime < 0 {
		return nil, fmt.Errorf("%w: process %d arrival time must be >= 0, got %d", ErrInvalidInput, pid, arrivalTime)
	}
	return &Process{
		PID:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
	}, nil
}

// clone returns an independent copy with the derived fields reset, so a
// fresh simulation run always starts from RemainingTime == BurstTime.
func (p *Process) clone() *Process {
	return &Process{
		PID:           p.PID,
		ArrivalTime:   p.ArrivalTime,
		BurstTime:     p.BurstTime,
		Priority:      p.Priority,
		RemainingTime: p.BurstTime,
	}
}

// String returns a human-readable representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Arrival: %d, Burst: %d, Priority: %d, Remaining: %d)",
		p.PID, p.ArrivalTime, p.BurstTime, p.Priority, p.RemainingTime)
}
