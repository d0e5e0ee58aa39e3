// Package workload acquires process sets for the simulator: YAML spec
// files, CSV traces, seeded random generation, and the built-in sample
// set. All loaders return validated sim.Process records ready to hand
// to a fresh engine.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sched-sim/sched-sim/sim"
)

// Spec is the top-level workload file.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Version   string        `yaml:"version,omitempty"`
	Processes []ProcessSpec `yaml:"processes"`
}

// ProcessSpec defines a single process entry in a workload file.
type ProcessSpec struct {
	PID      int64 `yaml:"pid"`
	Arrival  int64 `yaml:"arrival"`
	Burst    int64 `yaml:"burst"`
	Priority int64 `yaml:"priority,omitempty"`
}

// LoadSpec reads and parses a YAML workload file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Build validates the spec and converts it into process records.
// Rejects duplicate pids and any entry sim.NewProcess rejects.
func (s *Spec) Build() ([]*sim.Process, error) {
	if len(s.Processes) == 0 {
		return nil, fmt.Errorf("%w: workload spec lists no processes", sim.ErrInvalidInput)
	}
	seen := make(map[int64]bool, len(s.Processes))
	procs := make([]*sim.Process, 0, len(s.Processes))
	for i, ps := range s.Processes {
		if seen[ps.PID] {
			return nil, fmt.Errorf("%w: duplicate pid %d at entry %d", sim.ErrInvalidInput, ps.PID, i)
		}
		seen[ps.PID] = true
		p, err := sim.NewProcess(ps.PID, ps.Arrival, ps.Burst, ps.Priority)
		if err != nil {
			return nil, fmt.Errorf("workload spec entry %d: %w", i, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}
