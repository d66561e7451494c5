// Implements the append-only telemetry series recorded on every simulation
// step and consumed by the analyzer.

package sim

import "fmt"

// TimeSeriesPoint is a single (timestamp, value) sample.
type TimeSeriesPoint struct {
	Time  float64 // ms
	Value float64
}

// TimeSeries is an ordered, append-only sequence of samples with
// non-decreasing timestamps. It also tracks the maximum value ever
// observed, which the analyzer uses to cap forecasts. One series belongs
// to exactly one simulation run and is never pruned or reordered.
type TimeSeries struct {
	points      []TimeSeriesPoint
	maxObserved float64
}

// Append records a sample. Timestamps must be non-decreasing; appending an
// earlier timestamp is a programmer error and panics.
func (ts *TimeSeries) Append(time, value float64) {
	if n := len(ts.points); n > 0 && time < ts.points[n-1].Time {
		panic(fmt.Sprintf("TimeSeries.Append: timestamp %v precedes last %v", time, ts.points[n-1].Time))
	}
	ts.points = append(ts.points, TimeSeriesPoint{Time: time, Value: value})
	if value > ts.maxObserved {
		ts.maxObserved = value
	}
}

// Len returns the number of recorded samples.
func (ts *TimeSeries) Len() int { return len(ts.points) }

// Points returns the recorded samples for iteration. The returned slice is
// the series' internal storage -- callers may read it but MUST NOT modify it.
func (ts *TimeSeries) Points() []TimeSeriesPoint { return ts.points }

// Last returns the most recent sample, or a zero point for an empty series.
func (ts *TimeSeries) Last() TimeSeriesPoint {
	if len(ts.points) == 0 {
		return TimeSeriesPoint{}
	}
	return ts.points[len(ts.points)-1]
}

// MaxObserved returns the largest value ever appended (0 for an empty series).
func (ts *TimeSeries) MaxObserved() float64 { return ts.maxObserved }
