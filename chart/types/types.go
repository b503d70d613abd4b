package types

import (
	"math"
)

// SeriesKind tags a series with its plotted shape. Aggregation and draw
// scheduling branch on this tag instead of inspecting concrete renderer
// types.
type SeriesKind int

const (
	// KindLine is a series drawn as a connected line.
	KindLine SeriesKind = iota
	// KindBar is a series drawn as clustered or stacked bars.
	KindBar
	// KindPie is a series consolidated into a pie slice.
	KindPie
	// KindOther is a series with no special aggregation behavior.
	KindOther
)

var kindToStr = map[SeriesKind]string{
	KindLine:  "line",
	KindBar:   "bar",
	KindPie:   "pie",
	KindOther: "other",
}

func (k SeriesKind) String() string {
	if s, ok := kindToStr[k]; ok {
		return s
	}
	return "other"
}

// GetSeriesKind parses a kind name, returning def for anything it does
// not recognize.
func GetSeriesKind(s string, def SeriesKind) SeriesKind {
	switch s {
	case "line":
		return KindLine
	case "bar":
		return KindBar
	case "pie":
		return KindPie
	case "other":
		return KindOther
	}
	return def
}

// StackMode is the pane-level bar stacking mode.
type StackMode int

const (
	// StackModeNone draws bar series side by side in one cluster.
	StackModeNone StackMode = iota
	// StackModeStacked accumulates bar values on top of preceding bars.
	StackModeStacked
	// StackModePercent accumulates bars and rescales each ordinal
	// position to percent of the position total.
	StackModePercent
	// StackModeSortedOverlay overlays bars, re-sorted by value
	// independently at every ordinal position.
	StackModeSortedOverlay
)

// GetStackMode parses a stack mode name, returning def for anything it
// does not recognize.
func GetStackMode(s string, def StackMode) StackMode {
	switch s {
	case "none":
		return StackModeNone
	case "stack":
		return StackModeStacked
	case "percentStack":
		return StackModePercent
	case "sortedOverlay":
		return StackModeSortedOverlay
	}
	return def
}

// BarBase is the axis a bar grows from: BarBaseX for vertical bars,
// BarBaseY for horizontal ones.
type BarBase int

const (
	BarBaseX BarBase = iota
	BarBaseY
)

// PointPair is a single (x, y) data point. A NaN in either coordinate
// marks the point as missing.
type PointPair struct {
	X float64
	Y float64
}

// Missing reports whether the point carries no drawable value.
func (p PointPair) Missing() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// GraphOptions are the per-series visual options consumed by the
// renderer. The range and scheduling code never looks at them.
type GraphOptions struct {
	Color        string
	Alpha        float64
	HasAlpha     bool
	LineWidth    float64
	HasLineWidth bool
	Dashed       float64
	Invisible    bool
}

// Series is one plottable unit: an ordered point sequence plus its axis
// assignment and kind tag. The point sequence may be empty; an empty
// series contributes no extent anywhere.
type Series struct {
	Label  string
	Kind   SeriesKind
	YAxis2 bool

	Points []PointPair

	GraphOptions
}

// MakeSeries builds a series over an existing point slice.
func MakeSeries(label string, kind SeriesKind, points []PointPair) *Series {
	return &Series{
		Label:  label,
		Kind:   kind,
		Points: points,
	}
}

// PointsFromXY zips two coordinate slices into a point sequence,
// truncating to the shorter of the two.
func PointsFromXY(xs, ys []float64) []PointPair {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	points := make([]PointPair, n)
	for i := 0; i < n; i++ {
		points[i] = PointPair{X: xs[i], Y: ys[i]}
	}
	return points
}

// PointsFromY builds a point sequence with ordinal X values 1..len(ys).
func PointsFromY(ys []float64) []PointPair {
	points := make([]PointPair, len(ys))
	for i, y := range ys {
		points[i] = PointPair{X: float64(i + 1), Y: y}
	}
	return points
}

// PointCount returns the number of points, including missing ones.
func (s *Series) PointCount() int {
	return len(s.Points)
}

// IsBar reports whether the series draws as bars.
func (s *Series) IsBar() bool { return s.Kind == KindBar }

// IsPie reports whether the series draws as a pie slice.
func (s *Series) IsPie() bool { return s.Kind == KindPie }

// IsLine reports whether the series draws as a line.
func (s *Series) IsLine() bool { return s.Kind == KindLine }

// CanStack reports whether the series is eligible for value stacking:
// bars always are, lines only when the pane stacks lines.
func (s *Series) CanStack(lineStack bool) bool {
	switch s.Kind {
	case KindBar:
		return true
	case KindLine:
		return lineStack
	}
	return false
}

// Range scans the point sequence and returns the data extent as
// (xMin, xMax, yMin, yMax). Missing coordinates are skipped. A
// coordinate that never received data is left at its sentinel:
// +Inf for a minimum, -Inf for a maximum.
//
// With ignoreInitialZeros set, leading points whose Y value is exactly
// zero are excluded from the Y extent. Their X values still count.
func (s *Series) Range(ignoreInitialZeros bool) (xMin, xMax, yMin, yMax float64) {
	xMin = math.Inf(1)
	xMax = math.Inf(-1)
	yMin = math.Inf(1)
	yMax = math.Inf(-1)

	started := !ignoreInitialZeros
	for _, p := range s.Points {
		if !math.IsNaN(p.X) {
			if p.X < xMin {
				xMin = p.X
			}
			if p.X > xMax {
				xMax = p.X
			}
		}
		if math.IsNaN(p.Y) {
			continue
		}
		if !started {
			if p.Y == 0 {
				continue
			}
			started = true
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	return xMin, xMax, yMin, yMax
}
