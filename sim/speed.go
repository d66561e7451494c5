package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpeedLevel is one discrete DVFS operating point.
type SpeedLevel struct {
	Multiplier float64 `yaml:"multiplier"` // relative throughput, baseline 1.0
	PowerWatts float64 `yaml:"power"`      // draw at this level, static power included
	Label      string  `yaml:"label"`
}

// SpeedTable is the ordered list of available speed levels, index 0 = lowest.
// The speed controller's mid-table branch requires at least three levels, so
// NewSpeedTable rejects shorter tables at configuration time.
type SpeedTable struct {
	Levels    []SpeedLevel `yaml:"levels"`
	IdleWatts float64      `yaml:"idle_power"` // deep-idle draw
}

// MinSpeedLevels is the smallest speed table the controller heuristic can
// address without its mid-table branch going out of range.
const MinSpeedLevels = 3

// NewSpeedTable validates and returns a speed table. Levels must be ordered
// lowest to highest with strictly positive, strictly ascending multipliers.
func NewSpeedTable(levels []SpeedLevel, idleWatts float64) (*SpeedTable, error) {
	if len(levels) < MinSpeedLevels {
		return nil, fmt.Errorf("speed table needs at least %d levels, got %d", MinSpeedLevels, len(levels))
	}
	if idleWatts < 0 {
		return nil, fmt.Errorf("idle power must be non-negative, got %v", idleWatts)
	}
	prev := 0.0
	for i, l := range levels {
		if l.Multiplier <= 0 {
			return nil, fmt.Errorf("level %d (%s): multiplier must be positive, got %v", i, l.Label, l.Multiplier)
		}
		if l.Multiplier <= prev {
			return nil, fmt.Errorf("level %d (%s): multipliers must ascend, %v after %v", i, l.Label, l.Multiplier, prev)
		}
		if l.PowerWatts < 0 {
			return nil, fmt.Errorf("level %d (%s): power must be non-negative, got %v", i, l.Label, l.PowerWatts)
		}
		prev = l.Multiplier
	}
	return &SpeedTable{Levels: levels, IdleWatts: idleWatts}, nil
}

// DefaultSpeedTable returns the illustrative three-level table used when no
// speed configuration file is given.
func DefaultSpeedTable() *SpeedTable {
	st, err := NewSpeedTable([]SpeedLevel{
		{Multiplier: 1.0, PowerWatts: 1.5, Label: "1.0GHz"},
		{Multiplier: 1.5, PowerWatts: 2.6, Label: "1.5GHz"},
		{Multiplier: 2.0, PowerWatts: 4.5, Label: "2.0GHz"},
	}, 0.2)
	if err != nil {
		panic(fmt.Sprintf("default speed table invalid: %v", err))
	}
	return st
}

// Lowest returns the index of the lowest speed level.
func (st *SpeedTable) Lowest() int { return 0 }

// Highest returns the index of the highest speed level.
func (st *SpeedTable) Highest() int { return len(st.Levels) - 1 }

// Middle returns the index of the fixed mid-table level.
func (st *SpeedTable) Middle() int { return len(st.Levels) / 2 }

// LoadSpeedTable reads and validates a YAML speed table file.
func LoadSpeedTable(path string) (*SpeedTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading speed config: %w", err)
	}
	var raw SpeedTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing speed config: %w", err)
	}
	return NewSpeedTable(raw.Levels, raw.IdleWatts)
}
