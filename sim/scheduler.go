package sim

import (
	"fmt"
)

// TaskScheduler selects the next task to dispatch from the ready set.
// The ready set is passed in the task table's insertion order; PickNext
// returns false when no candidate exists (empty ready set), never an
// out-of-range sentinel.
type TaskScheduler interface {
	PickNext(ready []*Task, now float64) (*Task, bool)
}

// SRTFScheduler implements shortest-remaining-time-first: the ready task
// with minimum remaining work wins. Ties go to the first task encountered
// in iteration order (stable with respect to insertion/id order) -- an
// explicit, documented tie-break.
type SRTFScheduler struct{}

func (s *SRTFScheduler) PickNext(ready []*Task, _ float64) (*Task, bool) {
	if len(ready) == 0 {
		return nil, false
	}
	best := ready[0]
	for _, t := range ready[1:] {
		if t.Remaining < best.Remaining {
			best = t
		}
	}
	return best, true
}

// FCFSScheduler dispatches the earliest-arrived ready task, with the same
// first-encountered tie-break as SRTF. Useful as a baseline policy when
// comparing turnaround and energy against SRTF.
type FCFSScheduler struct{}

func (f *FCFSScheduler) PickNext(ready []*Task, _ float64) (*Task, bool) {
	if len(ready) == 0 {
		return nil, false
	}
	best := ready[0]
	for _, t := range ready[1:] {
		if t.Arrival < best.Arrival {
			best = t
		}
	}
	return best, true
}

// IsValidScheduler returns true if the given name is a recognized policy.
func IsValidScheduler(name string) bool {
	switch name {
	case "", "srtf", "fcfs":
		return true
	default:
		return false
	}
}

// NewScheduler creates a TaskScheduler by name.
// Valid names: "srtf" (default), "fcfs".
// Empty string defaults to SRTFScheduler (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewScheduler(name string) TaskScheduler {
	switch name {
	case "", "srtf":
		return &SRTFScheduler{}
	case "fcfs":
		return &FCFSScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
}
