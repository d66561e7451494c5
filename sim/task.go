// Defines the Task struct that models a single unit of work in the simulation.
// Tracks arrival, burst, remaining work, memory footprint, io weight, and the
// start/finish timestamps stamped by the executor.

package sim

import (
	"fmt"
)

// Epsilon below which remaining work counts as zero.
const Epsilon = 1e-9

// timeUnset marks a start or finish timestamp that has not been stamped yet.
const timeUnset = -1.0

// TaskClass labels a task's observed workload character.
type TaskClass string

const (
	ClassCPUBound TaskClass = "CPU-bound"
	ClassIOBound  TaskClass = "IO-bound"
	ClassMixed    TaskClass = "Mixed"
)

// Task models one schedulable unit of work.
//
// Arrival, Burst, MemKB and IOWeight are fixed at load time. Remaining and
// CPUConsumed are mutated only by the executor: Remaining is monotone
// non-increasing from Burst, CPUConsumed monotone non-decreasing from zero,
// and Remaining + CPUConsumed == Burst within Epsilon at every instant.
type Task struct {
	ID       int     // Unique, stable identifier
	Arrival  float64 // Arrival time (ms, >= 0)
	Burst    float64 // Total work required (ms, > 0)
	MemKB    float64 // Simulated memory footprint (kb, >= 0)
	IOWeight float64 // Fraction of a slice spent on I/O wait, in [0,1]

	Remaining   float64 // Work left (ms); task is done when <= Epsilon
	CPUConsumed float64 // Work completed so far (ms)

	StartTime  float64 // First dispatch time (ms); timeUnset until started
	FinishTime float64 // Completion time (ms); timeUnset until finished
}

// NewTask creates a task with remaining work equal to its burst and
// unset start/finish timestamps.
func NewTask(id int, arrival, burst, memKB, ioWeight float64) *Task {
	return &Task{
		ID:         id,
		Arrival:    arrival,
		Burst:      burst,
		MemKB:      memKB,
		IOWeight:   ioWeight,
		Remaining:  burst,
		StartTime:  timeUnset,
		FinishTime: timeUnset,
	}
}

// Ready reports whether the task can run at time now: it has arrived and
// still has work left.
func (t *Task) Ready(now float64) bool {
	return t.Arrival <= now && t.Remaining > Epsilon
}

// Started reports whether the task has been dispatched at least once.
func (t *Task) Started() bool {
	return t.StartTime >= 0
}

// Finished reports whether the task has completed all of its work.
func (t *Task) Finished() bool {
	return t.FinishTime >= 0
}

// This method returns a human-readable string representation of a Task.
func (t Task) String() string {
	return fmt.Sprintf("Task: (ID: %d, Arrival: %.1f, Remaining: %.1f, CPUConsumed: %.1f)",
		t.ID, t.Arrival, t.Remaining, t.CPUConsumed)
}
