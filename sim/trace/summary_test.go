package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalSlices)
	assert.Equal(t, 0.0, summary.TotalBusyMs)
	assert.Equal(t, -1, summary.BusiestTaskID)
	assert.Empty(t, summary.RunTimeByTask)
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	summary := Summarize(NewExecutionTrace())
	assert.Equal(t, 0, summary.TotalSlices)
	assert.Equal(t, -1, summary.BusiestTaskID)
}

func TestSummarize_AggregatesPerTask(t *testing.T) {
	et := NewExecutionTrace()
	et.Append(Record{TaskID: 1, Start: 0, Duration: 30})
	et.Append(Record{TaskID: 2, Start: 30, Duration: 50})
	et.Append(Record{TaskID: 1, Start: 80, Duration: 40})

	summary := Summarize(et)

	assert.Equal(t, 3, summary.TotalSlices)
	assert.InDelta(t, 120.0, summary.TotalBusyMs, 1e-9)
	assert.InDelta(t, 70.0, summary.RunTimeByTask[1], 1e-9)
	assert.InDelta(t, 50.0, summary.RunTimeByTask[2], 1e-9)
	assert.Equal(t, 2, summary.SliceCounts[1])
	assert.Equal(t, 1, summary.BusiestTaskID)
}
