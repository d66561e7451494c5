package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_ExcludesUnfinishedFromAverages(t *testing.T) {
	s := newTestSimulator(uniformTable(), []*Task{
		NewTask(1, 0, 50, 0, 0),
		NewTask(2, 0, 500, 0, 0),
	})
	s.Tasks[0].FinishTime = 100 // turnaround 100, waiting 50
	s.BusyTime = 80

	m := s.Summary()

	assert.Equal(t, 2, m.TaskCount)
	assert.Equal(t, 1, m.FinishedCount)
	assert.Equal(t, 1, m.UnfinishedCount)
	assert.InDelta(t, 100.0, m.AvgTurnaroundMs, 1e-9)
	assert.InDelta(t, 50.0, m.AvgWaitingMs, 1e-9)
	assert.InDelta(t, 100.0, m.MakespanMs, 1e-9)
	assert.InDelta(t, 80.0, m.CPUUtilization, 1e-9)
}

func TestSummary_NoFinishedTasks_ZeroAverages(t *testing.T) {
	s := newTestSimulator(uniformTable(), []*Task{NewTask(1, 0, 50, 0, 0)})
	m := s.Summary()

	assert.Equal(t, 0, m.FinishedCount)
	assert.Equal(t, 0.0, m.AvgTurnaroundMs)
	assert.Equal(t, 0.0, m.AvgWaitingMs)
	assert.Equal(t, 0.0, m.MakespanMs)
}

func TestSummary_ZeroMakespanGuard(t *testing.T) {
	// busy / max(1, makespan): a zero makespan must not divide by zero.
	s := newTestSimulator(uniformTable(), []*Task{NewTask(1, 0, 50, 0, 0)})
	s.BusyTime = 0.5
	m := s.Summary()

	assert.InDelta(t, 50.0, m.CPUUtilization, 1e-9)
}
