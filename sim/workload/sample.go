package workload

import "github.com/eadvfs-sim/eadvfs-sim/sim"

// Sample returns the built-in illustrative jobset used when no trace file
// is given: a mix of CPU-heavy, IO-heavy and medium tasks with staggered
// arrivals.
func Sample() []*sim.Task {
	return []*sim.Task{
		sim.NewTask(1, 0, 200, 20000, 0.1),
		sim.NewTask(2, 20, 80, 10000, 0.7),
		sim.NewTask(3, 40, 150, 50000, 0.2),
		sim.NewTask(4, 100, 400, 120000, 0.05),
		sim.NewTask(5, 250, 60, 8000, 0.8),
	}
}
