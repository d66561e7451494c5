// Package trace provides execution-trace recording for post-run analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Record captures one contiguous execution slice of a task.
type Record struct {
	TaskID     int
	Start      float64 // ms
	Duration   float64 // ms
	SpeedLabel string  // speed level active when the slice began
}

// End returns the simulated time at which the slice ends.
func (r Record) End() float64 {
	return r.Start + r.Duration
}
