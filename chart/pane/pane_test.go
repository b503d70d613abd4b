package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChuckFork/ZedGraph/chart/types"
)

func TestNewDefaults(t *testing.T) {
	p := New("demo")

	assert.Equal(t, "demo", p.Title)
	assert.Equal(t, DefaultClusterScaleWidth, p.ClusterScaleWidth)
	assert.Equal(t, types.StackModeNone, p.StackMode)
}

func TestRecalcRange(t *testing.T) {
	p := New("")
	p.AddLine("a", types.PointsFromXY([]float64{1, 2, 3}, []float64{4, 5, 6}))

	b := p.RecalcRange()

	assert.Equal(t, 1.0, b.XMin)
	assert.Equal(t, 3.0, b.XMax)
	assert.Equal(t, 4.0, b.YMin)
	assert.Equal(t, 6.0, b.YMax)
}

func TestRecalcRangeAxisOverrides(t *testing.T) {
	p := New("")
	p.AddLine("a", types.PointsFromY([]float64{4, 5, 6}))
	p.YAxis.Min = 0
	p.YAxis.Max = 100

	b := p.RecalcRange()

	assert.Equal(t, 0.0, b.YMin)
	assert.Equal(t, 100.0, b.YMax)
}

func TestRecalcRangeFollowsMutation(t *testing.T) {
	p := New("")
	p.AddLine("a", types.PointsFromY([]float64{1, 2}))
	first := p.RecalcRange()

	p.AddLine("b", types.PointsFromY([]float64{50}))
	second := p.RecalcRange()

	assert.Equal(t, 2.0, first.YMax)
	assert.Equal(t, 50.0, second.YMax, "no caching between calls")
}

func TestAddersSetKind(t *testing.T) {
	p := New("")
	p.AddLine("l", nil)
	p.AddBar("b", nil)
	p.AddPie("p", nil)

	require.Len(t, p.Curves, 3)
	assert.Equal(t, types.KindLine, p.Curves[0].Kind)
	assert.Equal(t, types.KindBar, p.Curves[1].Kind)
	assert.Equal(t, types.KindPie, p.Curves[2].Kind)
}

func TestInsertAndRemoveSeries(t *testing.T) {
	p := New("")
	p.AddLine("a", nil)
	p.AddLine("c", nil)
	p.InsertSeries(1, types.MakeSeries("b", types.KindLine, nil))

	require.Len(t, p.Curves, 3)
	assert.Equal(t, "b", p.Curves[1].Label)

	p.RemoveSeries(1)
	assert.Equal(t, -1, p.Curves.IndexOf("b"))
}

func TestCopyIndependence(t *testing.T) {
	p := New("orig")
	p.AddBar("bars", types.PointsFromY([]float64{3, 4}))
	p.StackMode = types.StackModeStacked

	c := p.Copy()
	c.Curves[0].Points[0].Y = 999
	c.Title = "copy"

	assert.Equal(t, 3.0, p.Curves[0].Points[0].Y)
	assert.Equal(t, "orig", p.Title)
	assert.Equal(t, types.StackModeStacked, c.StackMode)

	// Bounds agree while the data agrees.
	c2 := p.Copy()
	assert.Equal(t, p.RecalcRange(), c2.RecalcRange())
}

func TestContextSnapshot(t *testing.T) {
	p := New("")
	p.XAxis.Ordinal = true
	p.StackMode = types.StackModePercent
	p.BarBase = types.BarBaseY
	p.StackedLines = true

	ctx := p.Context()

	assert.True(t, ctx.X.Ordinal)
	assert.Equal(t, types.StackModePercent, ctx.StackMode)
	assert.Equal(t, types.BarBaseY, ctx.BarBase)
	assert.True(t, ctx.StackedLines)
	assert.Equal(t, DefaultClusterScaleWidth, ctx.ClusterScaleWidth)
}
