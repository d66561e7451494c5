// Aggregates end-of-run statistics for final reporting.

package sim

import (
	"fmt"
	"math"
)

// Metrics holds the final summary values of one simulation run.
type Metrics struct {
	TaskCount       int
	FinishedCount   int
	UnfinishedCount int     // tasks cut off by the safety horizon
	AvgTurnaroundMs float64 // mean(finish - arrival) over finished tasks
	AvgWaitingMs    float64 // mean(turnaround - burst) over finished tasks
	MakespanMs      float64 // max finish time
	CPUUtilization  float64 // busy / max(1, makespan) * 100
	TotalEnergyJ    float64
}

// Summary computes the run's final metrics. Tasks without a recorded finish
// (horizon cutoff) are counted separately and excluded from the averages so
// they cannot poison the means.
func (s *Simulator) Summary() *Metrics {
	m := &Metrics{TaskCount: len(s.Tasks), TotalEnergyJ: s.Energy}

	totalTurnaround, totalWaiting := 0.0, 0.0
	for _, t := range s.Tasks {
		if !t.Finished() {
			m.UnfinishedCount++
			continue
		}
		m.FinishedCount++
		turnaround := t.FinishTime - t.Arrival
		totalTurnaround += turnaround
		totalWaiting += turnaround - t.Burst
		m.MakespanMs = math.Max(m.MakespanMs, t.FinishTime)
	}
	if m.FinishedCount > 0 {
		m.AvgTurnaroundMs = totalTurnaround / float64(m.FinishedCount)
		m.AvgWaitingMs = totalWaiting / float64(m.FinishedCount)
	}
	m.CPUUtilization = s.BusyTime / math.Max(1.0, m.MakespanMs) * 100.0

	return m
}

// Print displays the aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("===== EADVFS Simulation Results =====")
	fmt.Printf("Tasks                : %d\n", m.TaskCount)
	if m.UnfinishedCount > 0 {
		fmt.Printf("Unfinished (horizon) : %d\n", m.UnfinishedCount)
	}
	fmt.Printf("Avg Turnaround (ms)  : %.3f\n", m.AvgTurnaroundMs)
	fmt.Printf("Avg Waiting (ms)     : %.3f\n", m.AvgWaitingMs)
	fmt.Printf("Makespan (ms)        : %.3f\n", m.MakespanMs)
	fmt.Printf("Total Energy (J)     : %.3f\n", m.TotalEnergyJ)
	fmt.Printf("CPU Utilization (%%)  : %.3f\n", m.CPUUtilization)
}
