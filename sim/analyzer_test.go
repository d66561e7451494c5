package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seriesFrom(points ...TimeSeriesPoint) *TimeSeries {
	ts := &TimeSeries{}
	for _, p := range points {
		ts.Append(p.Time, p.Value)
	}
	return ts
}

func TestMovingAverage_EmptySeries_ReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, MovingAverage(&TimeSeries{}, 200))
}

func TestMovingAverage_WindowedMean(t *testing.T) {
	ts := seriesFrom(
		TimeSeriesPoint{Time: 800, Value: 100}, // outside window
		TimeSeriesPoint{Time: 900, Value: 40},
		TimeSeriesPoint{Time: 950, Value: 60},
		TimeSeriesPoint{Time: 1000, Value: 80},
	)
	// window 150: points at 900, 950, 1000 included
	assert.InDelta(t, 60.0, MovingAverage(ts, 150), 1e-9)
}

func TestMovingAverage_StopsAtFirstGap(t *testing.T) {
	// The backward scan requires the included segment to be contiguous in
	// time: a gap wider than the window excludes all older points, even
	// ones whose own distance to the end would qualify. Documented
	// behavior, preserved deliberately.
	ts := seriesFrom(
		TimeSeriesPoint{Time: 0, Value: 5},
		TimeSeriesPoint{Time: 10, Value: 5},
		TimeSeriesPoint{Time: 500, Value: 7},
		TimeSeriesPoint{Time: 600, Value: 9},
	)
	assert.InDelta(t, 8.0, MovingAverage(ts, 200), 1e-9)
}

func TestRegression_FewerThanFivePoints_FlatForecast(t *testing.T) {
	// Exactly slope = 0 and intercept = last observed value.
	ts := seriesFrom(
		TimeSeriesPoint{Time: 0, Value: 10},
		TimeSeriesPoint{Time: 1, Value: 20},
		TimeSeriesPoint{Time: 2, Value: 30},
		TimeSeriesPoint{Time: 3, Value: 40},
	)

	reg := Regression(ts, 10)
	assert.Equal(t, 0.0, reg.Slope)
	assert.Equal(t, 40.0, reg.Predicted)
}

func TestRegression_EmptySeries_FlatZero(t *testing.T) {
	reg := Regression(&TimeSeries{}, 10)
	assert.Equal(t, 0.0, reg.Slope)
	assert.Equal(t, 0.0, reg.Predicted)
}

func TestRegression_LinearData_RecoversSlope(t *testing.T) {
	ts := &TimeSeries{}
	for i := 0; i < 10; i++ {
		x := float64(i)
		ts.Append(x, 2*x+5)
	}

	reg := Regression(ts, 10)
	assert.InDelta(t, 2.0, reg.Slope, 1e-9)
	assert.InDelta(t, 23.0, reg.Predicted, 1e-9)
}

func TestRegression_WindowUsesOnlyTrailingPoints(t *testing.T) {
	// Early garbage outside the window must not influence the fit.
	ts := &TimeSeries{}
	ts.Append(0, 1000)
	ts.Append(1, 1000)
	for i := 2; i < 12; i++ {
		x := float64(i)
		ts.Append(x, 3*x)
	}

	reg := Regression(ts, 10)
	assert.InDelta(t, 3.0, reg.Slope, 1e-9)
}

func TestRegression_ZeroVariance_ReturnsMean(t *testing.T) {
	// All samples at one timestamp: the variance denominator vanishes and
	// the fit falls back to slope 0 with the window mean.
	ts := &TimeSeries{}
	for _, v := range []float64{1, 2, 3, 4, 5, 6} {
		ts.Append(100, v)
	}

	reg := Regression(ts, 10)
	assert.Equal(t, 0.0, reg.Slope)
	assert.InDelta(t, 3.5, reg.Predicted, 1e-9)
}

func TestForecast_ExtremeSlope_ClampedToCap(t *testing.T) {
	// Last value 100, max observed 100: cap = 200 regardless of how wild
	// the slope is.
	ts := seriesFrom(TimeSeriesPoint{Time: 0, Value: 100})

	raw, clamped := Forecast(ts, 1e12, DefaultForecastHorizon)
	assert.Greater(t, raw, clamped)
	assert.Equal(t, 200.0, clamped)
}

func TestForecast_NegativeProjection_ClampedToZero(t *testing.T) {
	ts := seriesFrom(TimeSeriesPoint{Time: 0, Value: 100})

	_, clamped := Forecast(ts, -1e12, DefaultForecastHorizon)
	assert.Equal(t, 0.0, clamped)
}

func TestForecast_NearZeroHistory_UsesFallbackFloor(t *testing.T) {
	// Max observed ~0 makes 2*max useless as a cap; the fallback floor
	// bounds the projection instead.
	ts := seriesFrom(TimeSeriesPoint{Time: 0, Value: 0.3})

	_, clamped := Forecast(ts, 1e12, DefaultForecastHorizon)
	assert.Equal(t, 100.0, clamped)
}

func TestForecast_InsideCap_Unclamped(t *testing.T) {
	ts := seriesFrom(
		TimeSeriesPoint{Time: 0, Value: 80},
		TimeSeriesPoint{Time: 100, Value: 100},
	)

	raw, clamped := Forecast(ts, 0.1, DefaultForecastHorizon)
	assert.InDelta(t, 150.0, raw, 1e-9)
	assert.Equal(t, raw, clamped)
}

func TestIsHotspot_RequiresBothConditions(t *testing.T) {
	cases := []struct {
		name      string
		cpu, rem  float64
		isHotspot bool
	}{
		{"heavy consumption, much left", 150, 80, true},
		{"heavy consumption, nearly done", 150, 10, false},
		{"light consumption, much left", 50, 300, false},
		{"boundary values excluded", 100, 50, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &Task{CPUConsumed: tc.cpu, Remaining: tc.rem}
			assert.Equal(t, tc.isHotspot, IsHotspot(task))
		})
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	cases := []struct {
		name string
		task Task
		want TaskClass
	}{
		{"high cpu fraction wins", Task{Burst: 100, CPUConsumed: 80, IOWeight: 0.9}, ClassCPUBound},
		{"io weight decides next", Task{Burst: 100, CPUConsumed: 30, IOWeight: 0.7}, ClassIOBound},
		{"otherwise mixed", Task{Burst: 100, CPUConsumed: 30, IOWeight: 0.2}, ClassMixed},
		{"tiny burst guarded by max(1, burst)", Task{Burst: 0.5, CPUConsumed: 0.4, IOWeight: 0}, ClassMixed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(&tc.task))
		})
	}
}
