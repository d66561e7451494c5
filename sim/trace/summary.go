package trace

// TraceSummary aggregates statistics from an ExecutionTrace.
type TraceSummary struct {
	TotalSlices   int
	TotalBusyMs   float64
	BusiestTaskID int             // task with the largest total run time; -1 if empty
	RunTimeByTask map[int]float64 // task ID → total run time (ms)
	SliceCounts   map[int]int     // task ID → merged slice count
}

// Summarize computes aggregate statistics from an ExecutionTrace.
// Safe for nil or empty traces (returns zero-value fields, BusiestTaskID -1).
func Summarize(et *ExecutionTrace) *TraceSummary {
	summary := &TraceSummary{
		BusiestTaskID: -1,
		RunTimeByTask: make(map[int]float64),
		SliceCounts:   make(map[int]int),
	}
	if et == nil {
		return summary
	}

	summary.TotalSlices = len(et.Records)
	busiest := 0.0
	for _, r := range et.Records {
		summary.TotalBusyMs += r.Duration
		summary.RunTimeByTask[r.TaskID] += r.Duration
		summary.SliceCounts[r.TaskID]++
		if summary.RunTimeByTask[r.TaskID] > busiest {
			busiest = summary.RunTimeByTask[r.TaskID]
			summary.BusiestTaskID = r.TaskID
		}
	}

	return summary
}
