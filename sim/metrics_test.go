package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_ComputesRunAggregates(t *testing.T) {
	// FCFS over bursts 4 and 2, both at 0:
	// P1 [0,4) waits 0, P2 [4,6) waits 4
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 4, 0),
		mustProcess(t, 2, 0, 2, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	m, err := engine.Summary(AlgorithmFCFS)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmFCFS, m.Algorithm)
	assert.Equal(t, 2, m.CompletedCount)
	assert.Equal(t, int64(6), m.TotalBurstTime)
	assert.Equal(t, int64(6), m.Makespan)
	assert.Equal(t, 1, m.ContextSwitches)
	assert.InDelta(t, 2.0, m.AvgWaitingTime, 1e-9)    // (0+4)/2
	assert.InDelta(t, 5.0, m.AvgTurnaroundTime, 1e-9) // (4+6)/2
}

func TestSummary_EmptySet_ReturnsEmptyProcessSet(t *testing.T) {
	engine, err := NewEngine(nil)
	require.NoError(t, err)
	require.NoError(t, engine.RunFCFS())

	_, err = engine.Summary(AlgorithmFCFS)
	assert.True(t, errors.Is(err, ErrEmptyProcessSet))
}

func TestSummary_RoundRobinCountsContextSwitches(t *testing.T) {
	engine, err := NewEngine([]*Process{
		mustProcess(t, 1, 0, 4, 0),
		mustProcess(t, 2, 0, 4, 0),
	})
	require.NoError(t, err)
	require.NoError(t, engine.RunRoundRobin(2))

	m, err := engine.Summary(AlgorithmRoundRobin)
	require.NoError(t, err)
	assert.Equal(t, 3, m.ContextSwitches) // 4 intervals
	assert.Equal(t, int64(8), m.Makespan)
}
