package sim

import "math"

// Default thresholds for the speed selection heuristic.
const (
	DefaultShortThreshold   = 30.0  // ms: remaining <= threshold counts as short
	DefaultUtilThreshold    = 0.6   // predicted utilization that forces high speed
	DefaultLongAvgRemaining = 200.0 // ms: avg remaining above this prefers low speed
	DefaultLookaheadWindow  = 200.0 // ms
)

// SpeedController picks a speed level for the upcoming slice from the ready
// set's aggregate shape. It is stateless and non-adaptive: no feedback from
// past prediction accuracy.
type SpeedController struct {
	Table            *SpeedTable
	ShortThreshold   float64 // ms
	UtilThreshold    float64
	LongAvgRemaining float64 // ms
}

// NewSpeedController creates a controller with default thresholds over a
// validated speed table.
func NewSpeedController(table *SpeedTable) *SpeedController {
	return &SpeedController{
		Table:            table,
		ShortThreshold:   DefaultShortThreshold,
		UtilThreshold:    DefaultUtilThreshold,
		LongAvgRemaining: DefaultLongAvgRemaining,
	}
}

// PickLevel returns the speed level index for the upcoming slice, or false
// when the ready set is empty. Rules are evaluated in order, first match
// wins:
//
//  1. many short jobs or high predicted utilization → highest level
//  2. long average remaining work → lowest level
//  3. default → fixed mid-table level
//
// The mid-table branch is safe because NewSpeedTable guarantees at least
// MinSpeedLevels levels.
func (sc *SpeedController) PickLevel(ready []*Task, lookaheadMs float64) (int, bool) {
	if len(ready) == 0 {
		return 0, false
	}

	sumRemaining := 0.0
	shortCount := 0
	for _, t := range ready {
		sumRemaining += t.Remaining
		if t.Remaining <= sc.ShortThreshold {
			shortCount++
		}
	}
	avgRemaining := sumRemaining / float64(len(ready))
	shortFraction := float64(shortCount) / float64(len(ready))
	predictedUtil := math.Min(1.0, sumRemaining/math.Max(1.0, lookaheadMs))

	switch {
	case shortFraction > 0.6 || predictedUtil > sc.UtilThreshold:
		return sc.Table.Highest(), true
	case avgRemaining > sc.LongAvgRemaining:
		return sc.Table.Lowest(), true
	default:
		return sc.Table.Middle(), true
	}
}
