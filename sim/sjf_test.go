package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSJF_ShorterJobCompletesFirst(t *testing.T) {
	// Bursts 5 and 2, both at time 0: the short one runs first,
	// giving completion times 2 and 7
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 5, 0),
		mustProcess(t, 2, 0, 2, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunSJF())

	procs := engine.ProcessesByPID()
	assert.Equal(t, int64(7), procs[0].CompletionTime)
	assert.Equal(t, int64(2), procs[1].CompletionTime)
}

func TestSJF_OnlyConsidersArrivedProcesses(t *testing.T) {
	// P2 is shorter but has not arrived when the CPU frees up at 0;
	// non-preemptive SJF commits to P1 and P2 must wait
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 6, 0),
		mustProcess(t, 2, 1, 2, 0),
		mustProcess(t, 3, 1, 4, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunSJF())

	want := []Interval{
		{PID: 1, Start: 0, End: 6},
		{PID: 2, Start: 6, End: 8},
		{PID: 3, Start: 8, End: 12},
	}
	assert.Equal(t, want, engine.Timeline())
}

func TestSJF_TieBreak_FirstInputIndexWins(t *testing.T) {
	// Equal bursts, unsorted pids: the earlier input position wins,
	// regardless of pid numbering
	engine, err := NewEngine([]*Process{
		mustProcess(t, 5, 0, 3, 0),
		mustProcess(t, 2, 0, 3, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunSJF())

	timeline := engine.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, int64(5), timeline[0].PID)
	assert.Equal(t, int64(2), timeline[1].PID)
}

func TestSJF_IdleJump_SkipsToNextArrival(t *testing.T) {
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 10, 2, 0),
		mustProcess(t, 2, 12, 1, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunSJF())

	want := []Interval{
		{PID: 1, Start: 10, End: 12},
		{PID: 2, Start: 12, End: 13},
	}
	assert.Equal(t, want, engine.Timeline())
}

func TestPriority_LowerValueRunsFirst(t *testing.T) {
	// Priorities 5 and 2, both at time 0: priority 2 is more urgent,
	// giving completion times 2 and 7 for bursts 2 and 5
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 5, 5),
		mustProcess(t, 2, 0, 2, 2),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunPriority())

	procs := engine.ProcessesByPID()
	assert.Equal(t, int64(7), procs[0].CompletionTime)
	assert.Equal(t, int64(2), procs[1].CompletionTime)
}

func TestPriority_IgnoresBurstTime(t *testing.T) {
	// The long job has the more urgent priority and must run first
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 9, 1),
		mustProcess(t, 2, 0, 1, 3),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunPriority())

	want := []Interval{
		{PID: 1, Start: 0, End: 9},
		{PID: 2, Start: 9, End: 10},
	}
	assert.Equal(t, want, engine.Timeline())
}

func TestPriority_TieBreak_FirstInputIndexWins(t *testing.T) {
	engine, err := NewEngine([]*Process{
		mustProcess(t, 8, 0, 2, 1),
		mustProcess(t, 3, 0, 2, 1),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunPriority())

	timeline := engine.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, int64(8), timeline[0].PID)
	assert.Equal(t, int64(3), timeline[1].PID)
}

func TestPriority_LateUrgentArrivalWaitsForRunningProcess(t *testing.T) {
	// Non-preemptive: an urgent arrival at t=1 cannot interrupt P1
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 5, 4),
		mustProcess(t, 2, 1, 3, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunPriority())

	want := []Interval{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
	}
	assert.Equal(t, want, engine.Timeline())
}
