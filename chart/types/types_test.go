package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSeriesKind(t *testing.T) {
	tests := []struct {
		in   string
		def  SeriesKind
		want SeriesKind
	}{
		{"line", KindOther, KindLine},
		{"bar", KindOther, KindBar},
		{"pie", KindOther, KindPie},
		{"", KindLine, KindLine},
		{"nonsense", KindBar, KindBar},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetSeriesKind(tt.in, tt.def), "GetSeriesKind(%q)", tt.in)
	}
}

func TestGetStackMode(t *testing.T) {
	tests := []struct {
		in   string
		want StackMode
	}{
		{"none", StackModeNone},
		{"stack", StackModeStacked},
		{"percentStack", StackModePercent},
		{"sortedOverlay", StackModeSortedOverlay},
		{"bogus", StackModeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetStackMode(tt.in, StackModeNone), "GetStackMode(%q)", tt.in)
	}
}

func TestCanStack(t *testing.T) {
	bar := MakeSeries("b", KindBar, nil)
	line := MakeSeries("l", KindLine, nil)
	pie := MakeSeries("p", KindPie, nil)

	assert.True(t, bar.CanStack(false))
	assert.True(t, bar.CanStack(true))
	assert.False(t, line.CanStack(false))
	assert.True(t, line.CanStack(true))
	assert.False(t, pie.CanStack(true))
}

func TestPointsFromY(t *testing.T) {
	points := PointsFromY([]float64{5, 7, 9})
	assert.Equal(t, []PointPair{{1, 5}, {2, 7}, {3, 9}}, points)
}

func TestPointsFromXYTruncates(t *testing.T) {
	points := PointsFromXY([]float64{1, 2, 3}, []float64{10, 20})
	assert.Equal(t, []PointPair{{1, 10}, {2, 20}}, points)
}

func TestRangeEmpty(t *testing.T) {
	s := MakeSeries("empty", KindLine, nil)
	xMin, xMax, yMin, yMax := s.Range(false)

	assert.True(t, math.IsInf(xMin, 1))
	assert.True(t, math.IsInf(xMax, -1))
	assert.True(t, math.IsInf(yMin, 1))
	assert.True(t, math.IsInf(yMax, -1))
}

func TestRangeSkipsMissing(t *testing.T) {
	nan := math.NaN()
	s := MakeSeries("gaps", KindLine, []PointPair{
		{1, 5},
		{2, nan},
		{nan, 100},
		{4, -3},
	})
	xMin, xMax, yMin, yMax := s.Range(false)

	assert.Equal(t, 1.0, xMin)
	assert.Equal(t, 4.0, xMax)
	assert.Equal(t, -3.0, yMin)
	assert.Equal(t, 5.0, yMax)
}

func TestRangeIgnoreInitialZeros(t *testing.T) {
	s := MakeSeries("lead", KindLine, []PointPair{
		{1, 0},
		{2, 0},
		{3, 4},
		{4, 0},
	})

	xMin, xMax, yMin, yMax := s.Range(true)
	assert.Equal(t, 1.0, xMin, "leading zeros still extend x")
	assert.Equal(t, 4.0, xMax)
	assert.Equal(t, 0.0, yMin, "the zero after data counts")
	assert.Equal(t, 4.0, yMax)

	// All zeros with the flag set leaves the y extent untouched.
	z := MakeSeries("zeros", KindLine, []PointPair{{1, 0}, {2, 0}})
	_, _, yMin, yMax = z.Range(true)
	assert.True(t, math.IsInf(yMin, 1))
	assert.True(t, math.IsInf(yMax, -1))
}

func TestMissing(t *testing.T) {
	nan := math.NaN()
	assert.False(t, PointPair{1, 2}.Missing())
	assert.True(t, PointPair{nan, 2}.Missing())
	assert.True(t, PointPair{1, nan}.Missing())
}
