package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChuckFork/ZedGraph/chart/types"
)

func barList(mode types.StackMode, ys ...[]float64) (types.SeriesList, Context) {
	var l types.SeriesList
	for i, y := range ys {
		l.Add(types.MakeSeries(string(rune('A'+i)), types.KindBar, types.PointsFromY(y)))
	}
	ctx := Context{ClusterScaleWidth: 1, StackMode: mode}
	return l, ctx
}

func TestStackValueUnstacked(t *testing.T) {
	l, ctx := barList(types.StackModeNone, []float64{3, 5})

	x, low, high := StackValue(l, ctx, l[0], 1)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 5.0, high)
}

func TestStackValueAccumulates(t *testing.T) {
	l, ctx := barList(types.StackModeStacked, []float64{3, 3}, []float64{4, 4})

	x, low, high := StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 3.0, low)
	assert.Equal(t, 7.0, high)

	// The first series always starts from the baseline.
	_, low, high = StackValue(l, ctx, l[0], 0)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 3.0, high)
}

func TestStackValueIdempotent(t *testing.T) {
	l, ctx := barList(types.StackModeStacked, []float64{1, 2}, []float64{3, 4})

	x1, low1, high1 := StackValue(l, ctx, l[1], 1)
	x2, low2, high2 := StackValue(l, ctx, l[1], 1)

	assert.Equal(t, x1, x2)
	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
}

func TestStackValueShorterPredecessor(t *testing.T) {
	l, ctx := barList(types.StackModeStacked, []float64{9}, []float64{4, 4})

	// Index 1 is beyond series A, so it contributes nothing there.
	_, low, high := StackValue(l, ctx, l[1], 1)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 4.0, high)
}

func TestStackValueMissingPredecessor(t *testing.T) {
	l, ctx := barList(types.StackModeStacked, []float64{math.NaN(), 2}, []float64{4, 4})

	_, low, high := StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 4.0, high)
}

func TestStackValueOutOfRange(t *testing.T) {
	l, ctx := barList(types.StackModeStacked, []float64{1})

	x, low, high := StackValue(l, ctx, l[0], 5)
	assert.True(t, math.IsNaN(x))
	assert.Equal(t, 0.0, low)
	assert.True(t, math.IsNaN(high))

	x, _, high = StackValue(l, ctx, l[0], -1)
	assert.True(t, math.IsNaN(x))
	assert.True(t, math.IsNaN(high))
}

func TestStackValuePercent(t *testing.T) {
	l, ctx := barList(types.StackModePercent, []float64{1}, []float64{3})

	_, low, high := StackValue(l, ctx, l[0], 0)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 25.0, high)

	_, low, high = StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 25.0, low)
	assert.Equal(t, 100.0, high)
}

func TestStackValuePercentZeroTotal(t *testing.T) {
	l, ctx := barList(types.StackModePercent, []float64{0}, []float64{0})

	_, low, high := StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 0.0, high)
}

func TestStackValueLinesNeedStackedLines(t *testing.T) {
	var l types.SeriesList
	l.Add(types.MakeSeries("a", types.KindLine, types.PointsFromY([]float64{2})))
	l.Add(types.MakeSeries("b", types.KindLine, types.PointsFromY([]float64{3})))

	ctx := Context{StackMode: types.StackModeStacked}
	_, low, high := StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 0.0, low, "lines do not stack without StackedLines")
	assert.Equal(t, 3.0, high)

	ctx.StackedLines = true
	_, low, high = StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 2.0, low)
	assert.Equal(t, 5.0, high)
}

func TestStackValueMixedKindsDontStack(t *testing.T) {
	var l types.SeriesList
	l.Add(types.MakeSeries("line", types.KindLine, types.PointsFromY([]float64{10})))
	l.Add(types.MakeSeries("bar", types.KindBar, types.PointsFromY([]float64{4})))

	ctx := Context{StackMode: types.StackModeStacked, StackedLines: true}
	_, low, high := StackValue(l, ctx, l[1], 0)
	assert.Equal(t, 0.0, low, "a bar never accumulates onto a line")
	assert.Equal(t, 4.0, high)
}

func TestStackEligibleSortedOverlay(t *testing.T) {
	ctx := Context{StackMode: types.StackModeSortedOverlay}
	bar := types.MakeSeries("b", types.KindBar, nil)
	assert.False(t, StackEligible(ctx, bar), "sorted overlay is not a stacking mode")
}
