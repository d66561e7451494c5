package workload

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eadvfs-sim/eadvfs-sim/sim"
)

// DistSpec parameterizes a clamped Gaussian distribution.
type DistSpec struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// Spec is a synthetic workload configuration, loadable from YAML.
// Arrivals follow a Poisson process at Rate tasks per second; bursts and
// memory footprints are drawn from clamped Gaussians; io weights are drawn
// uniformly from [IOMin, IOMax].
type Spec struct {
	Seed  int64    `yaml:"seed"`
	Count int      `yaml:"count"`
	Rate  float64  `yaml:"rate"` // tasks per second
	Burst DistSpec `yaml:"burst"`
	Mem   DistSpec `yaml:"mem"`
	IOMin float64  `yaml:"io_min"`
	IOMax float64  `yaml:"io_max"`
}

// LoadSpec reads, parses and validates a YAML workload spec file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec's parameter ranges.
func (sp *Spec) Validate() error {
	if sp.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", sp.Count)
	}
	if sp.Rate <= 0 {
		return fmt.Errorf("rate must be > 0, got %v", sp.Rate)
	}
	if sp.Burst.Mean <= 0 {
		return fmt.Errorf("burst mean must be > 0, got %v", sp.Burst.Mean)
	}
	if sp.IOMin < 0 || sp.IOMax > 1 || sp.IOMin > sp.IOMax {
		return fmt.Errorf("io range [%v,%v] must lie within [0,1]", sp.IOMin, sp.IOMax)
	}
	return nil
}

// Generate produces the task table described by the spec. The same seed
// and spec always produce the same tasks.
func (sp *Spec) Generate() []*sim.Task {
	rng := rand.New(rand.NewSource(sp.Seed))

	tasks := make([]*sim.Task, 0, sp.Count)
	current := 0.0
	for i := 0; i < sp.Count; i++ {
		burst := math.Max(gaussClamped(rng, sp.Burst), 1.0)
		mem := math.Max(gaussClamped(rng, sp.Mem), 0.0)
		io := sp.IOMin + rng.Float64()*(sp.IOMax-sp.IOMin)
		tasks = append(tasks, sim.NewTask(i+1, current, burst, mem, io))

		// Poisson process: exponential inter-arrival, mean 1/rate seconds.
		current += rng.ExpFloat64() / sp.Rate * 1000.0
	}
	return tasks
}

// gaussClamped samples d's Gaussian and clamps the draw to [d.Min, d.Max].
func gaussClamped(rng *rand.Rand, d DistSpec) float64 {
	val := rng.NormFloat64()*d.StdDev + d.Mean
	if d.Max > d.Min {
		val = math.Min(d.Max, math.Max(d.Min, val))
	}
	return val
}
