package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSeries_Append_KeepsOrderAndMax(t *testing.T) {
	ts := &TimeSeries{}
	ts.Append(0, 10)
	ts.Append(5, 30)
	ts.Append(5, 20) // equal timestamps are allowed
	ts.Append(9, 25)

	assert.Equal(t, 4, ts.Len())
	assert.Equal(t, 25.0, ts.Last().Value)
	assert.Equal(t, 9.0, ts.Last().Time)
	assert.Equal(t, 30.0, ts.MaxObserved())
}

func TestTimeSeries_Append_DecreasingTimestamp_Panics(t *testing.T) {
	ts := &TimeSeries{}
	ts.Append(10, 1)
	assert.Panics(t, func() { ts.Append(9, 1) })
}

func TestTimeSeries_Empty_ZeroValues(t *testing.T) {
	ts := &TimeSeries{}
	assert.Equal(t, 0, ts.Len())
	assert.Equal(t, 0.0, ts.Last().Value)
	assert.Equal(t, 0.0, ts.MaxObserved())
}
