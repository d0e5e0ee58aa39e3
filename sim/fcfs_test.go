package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_SingleProcess_ZeroWaiting(t *testing.T) {
	engine, err := NewEngine([]*Process{mustProcess(t, 1, 0, 6, 0)})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	avgWait, err := engine.AverageWaitingTime()
	require.NoError(t, err)
	assert.Zero(t, avgWait)

	assert.Equal(t, []Interval{{PID: 1, Start: 0, End: 6}}, engine.Timeline())
}

func TestFCFS_IdleGap_ClockJumpsToArrival(t *testing.T) {
	// Single process arriving at 5: the timeline must start at 5, not 0
	engine, err := NewEngine([]*Process{mustProcess(t, 7, 5, 3, 0)})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	assert.Equal(t, []Interval{{PID: 7, Start: 5, End: 8}}, engine.Timeline())

	p := engine.ProcessesByPID()[0]
	assert.Equal(t, int64(8), p.CompletionTime)
	assert.Equal(t, int64(3), p.TurnaroundTime)
	assert.Zero(t, p.WaitingTime)
}

func TestFCFS_ExecutesInArrivalOrder(t *testing.T) {
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 4, 2, 0),
		mustProcess(t, 2, 0, 3, 0),
		mustProcess(t, 3, 2, 1, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	want := []Interval{
		{PID: 2, Start: 0, End: 3},
		{PID: 3, Start: 3, End: 4},
		{PID: 1, Start: 4, End: 6},
	}
	assert.Equal(t, want, engine.Timeline())
}

func TestFCFS_SimultaneousArrivals_PreserveInputOrder(t *testing.T) {
	// All arrive at 0; input order is the caller's order, not pid order
	engine, err := NewEngine([]*Process{
		mustProcess(t, 9, 0, 2, 0),
		mustProcess(t, 4, 0, 2, 0),
		mustProcess(t, 6, 0, 2, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	timeline := engine.Timeline()
	require.Len(t, timeline, 3)
	assert.Equal(t, int64(9), timeline[0].PID)
	assert.Equal(t, int64(4), timeline[1].PID)
	assert.Equal(t, int64(6), timeline[2].PID)
}

func TestFCFS_MidRunIdleGap(t *testing.T) {
	// P1 finishes at 8, P2 does not arrive until 20
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 8, 0),
		mustProcess(t, 2, 20, 4, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	want := []Interval{
		{PID: 1, Start: 0, End: 8},
		{PID: 2, Start: 20, End: 24},
	}
	assert.Equal(t, want, engine.Timeline())
}
