package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/sim"
)

// LoadCSV reads a process trace with rows of the form
//
//	pid,arrival,burst,priority
//
// A single header row is tolerated and skipped when its first field is
// not numeric. The priority column may be omitted (defaults to 0).
func LoadCSV(path string) ([]*sim.Process, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv trace: %w", err)
	}
	defer file.Close()
	return ParseCSV(file)
}

// ParseCSV parses process rows from r; see LoadCSV for the format.
func ParseCSV(r io.Reader) ([]*sim.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // priority column is optional

	var procs []*sim.Process
	seen := make(map[int64]bool)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv at row %d: %w", row, err)
		}
		row++

		if _, convErr := strconv.ParseInt(record[0], 10, 64); convErr != nil && row == 1 {
			continue // header row
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: csv row %d has %d fields, want at least pid,arrival,burst", sim.ErrInvalidInput, row, len(record))
		}

		fields := make([]int64, 0, 4)
		for i, raw := range record[:min(len(record), 4)] {
			v, convErr := strconv.ParseInt(raw, 10, 64)
			if convErr != nil {
				return nil, fmt.Errorf("%w: csv row %d field %d: %v", sim.ErrInvalidInput, row, i, convErr)
			}
			fields = append(fields, v)
		}
		var priority int64
		if len(fields) == 4 {
			priority = fields[3]
		}

		if seen[fields[0]] {
			return nil, fmt.Errorf("%w: duplicate pid %d at csv row %d", sim.ErrInvalidInput, fields[0], row)
		}
		seen[fields[0]] = true

		p, err := sim.NewProcess(fields[0], fields[1], fields[2], priority)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		procs = append(procs, p)
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("%w: csv trace holds no process rows", sim.ErrInvalidInput)
	}
	return procs, nil
}
