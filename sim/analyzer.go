// Derives moving averages, regression-based forecasts, hotspot flags and
// per-task classifications from the recorded telemetry history.

package sim

import "math"

// Analyzer defaults and degeneracy thresholds.
const (
	// MinRegressionPoints is the smallest sample a regression fit will
	// accept; below it the forecast falls back to a flat line.
	MinRegressionPoints = 5
	// DefaultRegressionWindow is how many trailing points the fit uses.
	DefaultRegressionWindow = 10
	// DefaultForecastHorizon is how far ahead (ms) forecasts project.
	DefaultForecastHorizon = 500.0
	// DefaultMovingAvgWindow is the moving-average lookback (ms).
	DefaultMovingAvgWindow = 200.0

	// Hotspot rule: heavy consumption with substantial work still left.
	HotspotCPUThreshold       = 100.0 // ms consumed
	HotspotRemainingThreshold = 50.0  // ms remaining

	// Classification rule thresholds.
	CPUBoundFraction = 0.7
	IOBoundIOWeight  = 0.6

	regressionDenomEps = 1e-9
)

// MovingAverage returns the mean of the series' trailing values whose
// timestamps lie within windowMs of the last sample. The scan walks
// backward and stops at the first point outside the window, so the included
// segment is contiguous in time: a sampling gap larger than the window cuts
// off older points even if their timestamps would otherwise qualify. This
// is deliberate, documented behavior. Returns 0 for an empty series.
func MovingAverage(ts *TimeSeries, windowMs float64) float64 {
	points := ts.Points()
	if len(points) == 0 {
		return 0
	}
	now := points[len(points)-1].Time
	sum, count := 0.0, 0
	for i := len(points) - 1; i >= 0; i-- {
		if now-points[i].Time > windowMs {
			break
		}
		sum += points[i].Value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// RegressionResult is the outcome of a trailing-window linear fit.
type RegressionResult struct {
	Slope     float64 // value units per ms
	Predicted float64 // fitted value at the series' last timestamp
}

// Regression fits value-on-time over the series' trailing lastN points by
// ordinary least squares, using the window's first timestamp as a zero
// offset for numerical stability. Degeneracies fall back locally:
// fewer than MinRegressionPoints points → slope 0 and the last observed
// value (flat forecast); near-zero variance denominator → slope 0 and the
// window mean.
func Regression(ts *TimeSeries, lastN int) RegressionResult {
	points := ts.Points()
	n := min(len(points), lastN)
	if n < MinRegressionPoints {
		return RegressionResult{Slope: 0, Predicted: ts.Last().Value}
	}

	start := len(points) - n
	t0 := points[start].Time
	var sx, sy, sxx, sxy float64
	for _, p := range points[start:] {
		x := p.Time - t0
		sx += x
		sy += p.Value
		sxx += x * x
		sxy += x * p.Value
	}

	denom := float64(n)*sxx - sx*sx
	if math.Abs(denom) < regressionDenomEps {
		return RegressionResult{Slope: 0, Predicted: sy / float64(n)}
	}
	slope := (float64(n)*sxy - sx*sy) / denom
	intercept := (sy - slope*sx) / float64(n)
	lastX := points[len(points)-1].Time - t0
	return RegressionResult{Slope: slope, Predicted: slope*lastX + intercept}
}

// Forecast projects the series horizonMs ahead of its last value along the
// given slope, clamped to [0, cap]. The cap is twice the series' maximum
// observed value; when that maximum is near zero the cap falls back to a
// floor derived from the last value, bounding runaway extrapolation from a
// noisy slope. Returns the raw projection and the clamped value.
func Forecast(ts *TimeSeries, slope, horizonMs float64) (raw, clamped float64) {
	last := ts.Last().Value
	raw = last + slope*horizonMs

	cap := 2.0 * ts.MaxObserved()
	if cap < 1.0 {
		cap = math.Max(100.0, last*2.0)
	}

	clamped = raw
	if clamped < 0 {
		clamped = 0
	}
	if clamped > cap {
		clamped = cap
	}
	return raw, clamped
}

// IsHotspot reports whether a task has consumed significant CPU time while
// still having substantial work left.
func IsHotspot(t *Task) bool {
	return t.CPUConsumed > HotspotCPUThreshold && t.Remaining > HotspotRemainingThreshold
}

// Classify labels a task by its observed workload character: the fraction
// of its burst already consumed decides CPU-bound, then the io weight
// decides IO-bound, otherwise Mixed.
func Classify(t *Task) TaskClass {
	cpuFraction := t.CPUConsumed / math.Max(1.0, t.Burst)
	switch {
	case cpuFraction > CPUBoundFraction:
		return ClassCPUBound
	case t.IOWeight > IOBoundIOWeight:
		return ClassIOBound
	default:
		return ClassMixed
	}
}
