// Assembles periodic analysis snapshots from the telemetry series and the
// task table. Snapshot values only -- text and CSV rendering live elsewhere.

package sim

import "sort"

// DefaultReportInterval is the reporting boundary spacing in ms.
const DefaultReportInterval = 100.0

// DefaultTopN is how many top CPU consumers a snapshot ranks.
const DefaultTopN = 3

// TaskCPU is one (pid, cpu consumed) entry in a snapshot's ranking.
type TaskCPU struct {
	PID   int
	CPUMs float64
}

// HotspotFlag captures a hotspot hit with the values that triggered it.
type HotspotFlag struct {
	PID         int
	CPUMs       float64
	RemainingMs float64
}

// TaskClassification pairs a task with its classification label.
type TaskClassification struct {
	PID   int
	Class TaskClass
}

// Snapshot is one periodic analysis record.
type Snapshot struct {
	Time        float64              // ms, the boundary (or forced end time) this snapshot covers
	TopTasks    []TaskCPU            // top-N by cumulative CPU, stable descending
	AvgUtil     float64              // moving-average CPU utilization (%)
	MemKB       float64              // last observed total memory (kb)
	Slope       float64              // regression slope (kb/ms)
	ForecastRaw float64              // unclamped projection (kb)
	ForecastKB  float64              // clamped projection (kb)
	Hotspots    []HotspotFlag        // tasks flagged by the hotspot rule
	Classes     []TaskClassification // task order; tasks with no CPU consumed are absent
}

// Reporter tracks the next reporting boundary and collects snapshots.
// After every clock advance it emits exactly one snapshot per boundary
// crossed -- catching up multiple boundaries when an idle jump spans
// several intervals -- plus one forced snapshot at the run's true end.
type Reporter struct {
	Interval float64
	TopN     int

	MovingAvgWindow  float64
	RegressionWindow int
	ForecastHorizon  float64

	nextBoundary float64
	Snapshots    []Snapshot
}

// NewReporter creates a reporter with its first boundary one interval in.
func NewReporter(intervalMs float64, topN int) *Reporter {
	return &Reporter{
		Interval:         intervalMs,
		TopN:             topN,
		MovingAvgWindow:  DefaultMovingAvgWindow,
		RegressionWindow: DefaultRegressionWindow,
		ForecastHorizon:  DefaultForecastHorizon,
		nextBoundary:     intervalMs,
	}
}

// OnAdvance emits one snapshot per reporting boundary the clock has crossed.
func (r *Reporter) OnAdvance(s *Simulator) {
	for s.Clock >= r.nextBoundary {
		r.Snapshots = append(r.Snapshots, r.buildSnapshot(s, r.nextBoundary))
		r.nextBoundary += r.Interval
	}
}

// Finalize emits the forced end-of-run snapshot at the true end time, even
// when it does not land on a boundary.
func (r *Reporter) Finalize(s *Simulator) {
	r.Snapshots = append(r.Snapshots, r.buildSnapshot(s, s.Clock))
}

func (r *Reporter) buildSnapshot(s *Simulator, at float64) Snapshot {
	snap := Snapshot{
		Time:    at,
		AvgUtil: MovingAverage(s.CPUUtil, r.MovingAvgWindow),
		MemKB:   s.MemUsage.Last().Value,
	}

	reg := Regression(s.MemUsage, r.RegressionWindow)
	snap.Slope = reg.Slope
	snap.ForecastRaw, snap.ForecastKB = Forecast(s.MemUsage, reg.Slope, r.ForecastHorizon)

	// Rank by cumulative CPU, stable descending: ties keep original task order.
	ranked := make([]*Task, len(s.Tasks))
	copy(ranked, s.Tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPUConsumed > ranked[j].CPUConsumed
	})
	for i := 0; i < r.TopN && i < len(ranked); i++ {
		snap.TopTasks = append(snap.TopTasks, TaskCPU{PID: ranked[i].ID, CPUMs: ranked[i].CPUConsumed})
	}

	for _, t := range s.Tasks {
		if IsHotspot(t) {
			snap.Hotspots = append(snap.Hotspots, HotspotFlag{PID: t.ID, CPUMs: t.CPUConsumed, RemainingMs: t.Remaining})
		}
		if t.CPUConsumed > 0 {
			snap.Classes = append(snap.Classes, TaskClassification{PID: t.ID, Class: Classify(t)})
		}
	}

	return snap
}
