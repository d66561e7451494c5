// Package workload turns external task descriptors into the engine's task
// table: plain-text trace files, the built-in sample jobset, and seeded
// synthetic generation from a YAML spec.
package workload

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eadvfs-sim/eadvfs-sim/sim"
)

// LoadTraceFile parses a whitespace-separated trace file into tasks.
// Each record is either "arrival_ms burst_ms" or
// "arrival_ms burst_ms mem_kb io_weight"; blank lines and lines starting
// with '#' are skipped. Task ids are assigned 1..n in file order.
func LoadTraceFile(path string) ([]*sim.Task, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close()

	var tasks []*sim.Task
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		task, err := parseRecord(line, len(tasks)+1)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", lineNo, err)
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace file: %w", err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("trace file %s holds no task records", path)
	}
	return tasks, nil
}

func parseRecord(line string, id int) (*sim.Task, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 4 {
		return nil, fmt.Errorf("expected 2 or 4 fields, got %d", len(fields))
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d %q is not a number", i+1, f)
		}
		values[i] = v
	}

	arrival, burst := values[0], values[1]
	memKB, ioWeight := 0.0, 0.0
	if len(values) == 4 {
		memKB, ioWeight = values[2], values[3]
	}

	if arrival < 0 {
		return nil, fmt.Errorf("arrival must be >= 0, got %v", arrival)
	}
	if burst <= 0 {
		return nil, fmt.Errorf("burst must be > 0, got %v", burst)
	}
	if memKB < 0 {
		return nil, fmt.Errorf("mem_kb must be >= 0, got %v", memKB)
	}
	if ioWeight < 0 || ioWeight > 1 {
		return nil, fmt.Errorf("io_weight must be in [0,1], got %v", ioWeight)
	}

	return sim.NewTask(id, arrival, burst, memKB, ioWeight), nil
}
