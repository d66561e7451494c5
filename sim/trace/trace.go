package trace

import "math"

// contiguityEps is the slack allowed between a record's end and the next
// record's start for the two to count as one contiguous execution.
const contiguityEps = 1e-6

// ExecutionTrace collects execution slices during a simulation run.
// Consecutive slices of the same task are merged into one record; the merge
// carries no control meaning, it only keeps the trace readable.
type ExecutionTrace struct {
	Records []Record
}

// NewExecutionTrace creates an ExecutionTrace ready for recording.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{Records: make([]Record, 0)}
}

// Append records an execution slice, merging it into the previous record
// when it continues the same task without a gap.
func (et *ExecutionTrace) Append(rec Record) {
	if n := len(et.Records); n > 0 {
		last := &et.Records[n-1]
		if last.TaskID == rec.TaskID && math.Abs(last.End()-rec.Start) <= contiguityEps {
			last.Duration += rec.Duration
			return
		}
	}
	et.Records = append(et.Records, rec)
}

// Len returns the number of merged records.
func (et *ExecutionTrace) Len() int { return len(et.Records) }
