package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim"
)

// GeneratorConfig parameterizes random process-set generation. The same
// seed and bounds always produce the same set, so generated workloads
// are reproducible across runs and machines.
type GeneratorConfig struct {
	Count       int   // number of processes (> 0)
	Seed        int64 // rng seed
	MaxArrival  int64 // arrivals drawn uniformly from [0, MaxArrival]
	MinBurst    int64 // bursts drawn uniformly from [MinBurst, MaxBurst]
	MaxBurst    int64
	MaxPriority int64 // priorities drawn uniformly from [0, MaxPriority]
}

// Generate produces a deterministic pseudo-random process set with pids
// 1..Count, in pid order.
func Generate(cfg GeneratorConfig) ([]*sim.Process, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: generator count must be > 0, got %d", sim.ErrInvalidInput, cfg.Count)
	}
	if cfg.MinBurst < 1 || cfg.MaxBurst < cfg.MinBurst {
		return nil, fmt.Errorf("%w: generator burst range [%d, %d] is invalid", sim.ErrInvalidInput, cfg.MinBurst, cfg.MaxBurst)
	}
	if cfg.MaxArrival < 0 || cfg.MaxPriority < 0 {
		return nil, fmt.Errorf("%w: generator bounds must be non-negative", sim.ErrInvalidInput)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	logrus.Debugf("generating %d processes (seed=%d)", cfg.Count, cfg.Seed)

	procs := make([]*sim.Process, 0, cfg.Count)
	for pid := int64(1); pid <= int64(cfg.Count); pid++ {
		arrival := rng.Int63n(cfg.MaxArrival + 1)
		burst := cfg.MinBurst + rng.Int63n(cfg.MaxBurst-cfg.MinBurst+1)
		priority := rng.Int63n(cfg.MaxPriority + 1)
		p, err := sim.NewProcess(pid, arrival, burst, priority)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// SampleProcesses returns the built-in five-process demonstration set:
// a mix of short and long bursts, staggered arrivals, and distinct
// priorities. Used when no workload file is supplied.
func SampleProcesses() []*sim.Process {
	specs := []ProcessSpec{
		{PID: 1, Arrival: 0, Burst: 8, Priority: 3},
		{PID: 2, Arrival: 1, Burst: 4, Priority: 1},
		{PID: 3, Arrival: 2, Burst: 9, Priority: 4},
		{PID: 4, Arrival: 3, Burst: 5, Priority: 2},
		{PID: 5, Arrival: 4, Burst: 2, Priority: 5},
	}
	procs := make([]*sim.Process, len(specs))
	for i, s := range specs {
		p, err := sim.NewProcess(s.PID, s.Arrival, s.Burst, s.Priority)
		if err != nil {
			panic(err) // static data, cannot fail
		}
		procs[i] = p
	}
	return procs
}
