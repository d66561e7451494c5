// sim/simulator.go
package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/eadvfs-sim/eadvfs-sim/sim/trace"
)

// EngineConfig groups the executor's tunable parameters.
type EngineConfig struct {
	Horizon        float64 // safety cutoff (ms); guards non-terminating heuristics
	Quantum        float64 // max uninterrupted slice (ms), for trace granularity
	Lookahead      float64 // speed controller lookahead window (ms)
	ReportInterval float64 // snapshot boundary spacing (ms)
	TopN           int     // ranked CPU consumers per snapshot
}

// DefaultEngineConfig returns the engine defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Horizon:        100000.0,
		Quantum:        50.0,
		Lookahead:      DefaultLookaheadWindow,
		ReportInterval: DefaultReportInterval,
		TopN:           DefaultTopN,
	}
}

// Simulator is the core object that holds simulation time, the task table,
// run-scoped accumulators, and the telemetry series. All state belongs to
// one run: NewSimulator is the reset-at-run-start contract, and nothing is
// shared across runs or goroutines.
type Simulator struct {
	Clock   float64 // current simulated time (ms); advanced only by the executor
	Horizon float64

	Tasks      []*Task // full task collection, insertion order; never removed
	Table      *SpeedTable
	Scheduler  TaskScheduler
	Controller *SpeedController

	Quantum   float64
	Lookahead float64

	// Run-scoped accumulators, both monotone non-decreasing.
	Energy   float64 // joules, idle draw included
	BusyTime float64 // ms spent executing slices

	// Telemetry, one point per step (active or idle).
	CPUUtil  *TimeSeries
	MemUsage *TimeSeries

	Trace    *trace.ExecutionTrace
	Reporter *Reporter
}

// NewSimulator assembles a run over the given task table. The speed table
// must already be validated (NewSpeedTable / DefaultSpeedTable).
// Non-positive knobs fall back to their defaults: a zero quantum or
// reporting interval would stall the event loop.
func NewSimulator(cfg EngineConfig, table *SpeedTable, scheduler TaskScheduler, tasks []*Task) *Simulator {
	defaults := DefaultEngineConfig()
	if cfg.Quantum <= 0 {
		cfg.Quantum = defaults.Quantum
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = defaults.Lookahead
	}
	if cfg.ReportInterval <= 0 {
		cfg.ReportInterval = defaults.ReportInterval
	}
	if cfg.TopN <= 0 {
		cfg.TopN = defaults.TopN
	}
	return &Simulator{
		Clock:      0,
		Horizon:    cfg.Horizon,
		Tasks:      tasks,
		Table:      table,
		Scheduler:  scheduler,
		Controller: NewSpeedController(table),
		Quantum:    cfg.Quantum,
		Lookahead:  cfg.Lookahead,
		CPUUtil:    &TimeSeries{},
		MemUsage:   &TimeSeries{},
		Trace:      trace.NewExecutionTrace(),
		Reporter:   NewReporter(cfg.ReportInterval, cfg.TopN),
	}
}

// Run executes the simulation to a terminal state: all tasks finished, no
// future arrivals, or the safety horizon exceeded. It ends with the forced
// final snapshot.
func (s *Simulator) Run() {
	s.recordTelemetry()
	for {
		done := s.step()
		s.Reporter.OnAdvance(s)
		if done {
			break
		}
		if s.Clock > s.Horizon {
			logrus.Warnf("[%.1fms] safety horizon %.1fms exceeded, terminating run", s.Clock, s.Horizon)
			break
		}
	}
	s.Reporter.Finalize(s)
	logrus.Infof("[%.1fms] simulation ended: energy=%.3fJ busy=%.1fms", s.Clock, s.Energy, s.BusyTime)
}

// step resolves one event: an idle jump to the next arrival, or the
// dispatch of one execution slice. Returns true at the terminal state.
func (s *Simulator) step() bool {
	ready := s.readySet()

	if len(ready) == 0 {
		next, ok := s.nextArrival()
		if !ok {
			return true // no ready task, no future arrival: run complete
		}
		s.idleJump(next)
		return false
	}

	levelIdx, _ := s.Controller.PickLevel(ready, s.Lookahead)
	level := s.Table.Levels[levelIdx]
	task, _ := s.Scheduler.PickNext(ready, s.Clock)

	runLen := s.sliceLength(task, level)
	if runLen <= 0 {
		// Degenerate slice: advance to the nearest boundary without
		// crediting work, accruing idle energy, and retry selection.
		boundary := s.Clock + s.Quantum
		if next, ok := s.nextArrival(); ok && next < boundary {
			boundary = next
		}
		logrus.Debugf("[%.1fms] zero-length slice for task %d, advancing to %.1fms", s.Clock, task.ID, boundary)
		s.idleJump(boundary)
		return false
	}

	if !task.Started() {
		task.StartTime = s.Clock
	}

	work := runLen * level.Multiplier * (1 - task.IOWeight)
	task.Remaining = math.Max(0, task.Remaining-work)
	task.CPUConsumed += work
	s.Energy += level.PowerWatts * runLen / 1000.0
	s.BusyTime += runLen
	s.Trace.Append(trace.Record{TaskID: task.ID, Start: s.Clock, Duration: runLen, SpeedLabel: level.Label})
	s.Clock += runLen

	logrus.Debugf("[%.1fms] ran task %d for %.2fms at %s (work=%.2fms, remaining=%.2fms)",
		s.Clock, task.ID, runLen, level.Label, work, task.Remaining)

	if task.Remaining <= Epsilon && !task.Finished() {
		task.FinishTime = s.Clock
		logrus.Infof("[%.1fms] task %d finished (turnaround=%.1fms)", s.Clock, task.ID, s.Clock-task.Arrival)
	}

	s.recordTelemetry()
	return false
}

// sliceLength computes the candidate run length: the minimum of the time to
// drain the task at this level's io-discounted throughput, the time to the
// next future arrival (preemption boundary), and the quantum cap.
func (s *Simulator) sliceLength(task *Task, level SpeedLevel) float64 {
	effective := level.Multiplier * math.Max(1-task.IOWeight, Epsilon)
	runLen := task.Remaining / effective
	if next, ok := s.nextArrival(); ok {
		runLen = math.Min(runLen, next-s.Clock)
	}
	return math.Min(runLen, s.Quantum)
}

// idleJump advances the clock to target, accruing idle energy for the gap.
// Wall-clock gaps always enter the energy accounting, including on the
// degenerate-slice path.
func (s *Simulator) idleJump(target float64) {
	gap := target - s.Clock
	if gap <= 0 {
		return
	}
	s.Energy += s.Table.IdleWatts * gap / 1000.0
	s.Clock = target
	logrus.Debugf("[%.1fms] idle jump of %.1fms (idle energy %.4fJ)", s.Clock, gap, s.Table.IdleWatts*gap/1000.0)
	s.recordTelemetry()
}

// readySet returns the tasks runnable now, in insertion order. The order is
// what makes the scheduler tie-breaks stable.
func (s *Simulator) readySet() []*Task {
	ready := make([]*Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Ready(s.Clock) {
			ready = append(ready, t)
		}
	}
	return ready
}

// nextArrival returns the earliest arrival strictly after the current time,
// or false when every task has already arrived.
func (s *Simulator) nextArrival() (float64, bool) {
	next := math.Inf(1)
	found := false
	for _, t := range s.Tasks {
		if t.Arrival > s.Clock && t.Arrival < next {
			next = t.Arrival
			found = true
		}
	}
	return next, found
}

// recordTelemetry appends one point to each tracked series: instantaneous
// CPU utilization over the whole task table, and total memory in use by
// ready tasks.
func (s *Simulator) recordTelemetry() {
	busy := 0.0
	mem := 0.0
	for _, t := range s.Tasks {
		if t.Ready(s.Clock) {
			busy += math.Max(0, 1-t.IOWeight)
			mem += t.MemKB
		}
	}
	util := math.Min(100.0, busy/math.Max(1.0, float64(len(s.Tasks)))*100.0)
	s.CPUUtil.Append(s.Clock, util)
	s.MemUsage.Append(s.Clock, mem)
}
