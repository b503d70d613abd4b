// Package pane ties one chart together: the series collection, the
// overlay graphics, the three axis configurations and the stacking
// setup. The pane owns its collection; algorithms over the collection
// live in the ranges and draw packages.
package pane

import (
	"math"

	"github.com/ChuckFork/ZedGraph/chart/graphics"
	"github.com/ChuckFork/ZedGraph/chart/ranges"
	"github.com/ChuckFork/ZedGraph/chart/types"
)

// DefaultClusterScaleWidth is the base-axis width reserved for one bar
// cluster when the pane does not override it.
const DefaultClusterScaleWidth = 1.0

// Axis is the user-facing configuration of one axis. Min and Max
// override the computed extent when set; NaN means automatic.
type Axis struct {
	Ordinal bool
	Text    bool

	Min float64
	Max float64
}

func autoAxis() Axis {
	return Axis{Min: math.NaN(), Max: math.NaN()}
}

func (a Axis) kind() ranges.AxisKind {
	return ranges.AxisKind{Ordinal: a.Ordinal, Text: a.Text}
}

// Pane is one chart: a title, the owned series collection, overlay
// graphics and the scale configuration.
//
// A pane is not safe for concurrent use; callers serialize mutation and
// rendering, typically by confining both to one render pass.
type Pane struct {
	Title string

	Curves  types.SeriesList
	Objects graphics.ObjList

	XAxis  Axis
	YAxis  Axis
	Y2Axis Axis

	StackMode    types.StackMode
	BarBase      types.BarBase
	StackedLines bool

	ClusterScaleWidth float64

	// IgnoreInitialZeros skips leading zero Y values when computing the
	// Y extent of non-stacked series.
	IgnoreInitialZeros bool
}

// New returns a pane with automatic axes and default bar settings.
func New(title string) *Pane {
	return &Pane{
		Title:             title,
		XAxis:             autoAxis(),
		YAxis:             autoAxis(),
		Y2Axis:            autoAxis(),
		ClusterScaleWidth: DefaultClusterScaleWidth,
	}
}

// Context snapshots the pane state the range and scheduling code needs.
func (p *Pane) Context() ranges.Context {
	return ranges.Context{
		X:                 p.XAxis.kind(),
		Y:                 p.YAxis.kind(),
		Y2:                p.Y2Axis.kind(),
		ClusterScaleWidth: p.ClusterScaleWidth,
		BarBase:           p.BarBase,
		StackMode:         p.StackMode,
		StackedLines:      p.StackedLines,
	}
}

// RecalcRange recomputes the axis bounds from the current collection.
// Nothing is cached: every call reflects the collection as it stands.
// Axis Min/Max overrides win over the computed extent.
func (p *Pane) RecalcRange() ranges.Bounds {
	b := ranges.ComputeRange(p.Curves, p.Context(), p.IgnoreInitialZeros)

	if !math.IsNaN(p.XAxis.Min) {
		b.XMin = p.XAxis.Min
	}
	if !math.IsNaN(p.XAxis.Max) {
		b.XMax = p.XAxis.Max
	}
	if !math.IsNaN(p.YAxis.Min) {
		b.YMin = p.YAxis.Min
	}
	if !math.IsNaN(p.YAxis.Max) {
		b.YMax = p.YAxis.Max
	}
	if !math.IsNaN(p.Y2Axis.Min) {
		b.Y2Min = p.Y2Axis.Min
	}
	if !math.IsNaN(p.Y2Axis.Max) {
		b.Y2Max = p.Y2Axis.Max
	}
	return b
}

// AddSeries appends a prepared series and returns it.
func (p *Pane) AddSeries(s *types.Series) *types.Series {
	p.Curves.Add(s)
	return s
}

// AddLine appends a line series over the given points.
func (p *Pane) AddLine(label string, points []types.PointPair) *types.Series {
	return p.AddSeries(types.MakeSeries(label, types.KindLine, points))
}

// AddBar appends a bar series over the given points.
func (p *Pane) AddBar(label string, points []types.PointPair) *types.Series {
	return p.AddSeries(types.MakeSeries(label, types.KindBar, points))
}

// AddPie appends a pie series over the given points.
func (p *Pane) AddPie(label string, points []types.PointPair) *types.Series {
	return p.AddSeries(types.MakeSeries(label, types.KindPie, points))
}

// InsertSeries inserts a series at the given rendering position.
func (p *Pane) InsertSeries(i int, s *types.Series) {
	p.Curves.InsertAt(i, s)
}

// RemoveSeries removes the series at the given position.
func (p *Pane) RemoveSeries(i int) {
	p.Curves.RemoveAt(i)
}

// Copy returns a pane whose collection is a deep copy of this one.
// Overlay items are shared: they are display configuration, not data.
func (p *Pane) Copy() *Pane {
	c := *p
	c.Curves = p.Curves.Copy()
	c.Objects = append(graphics.ObjList(nil), p.Objects...)
	return &c
}
