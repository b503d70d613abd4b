package ranges

import (
	"math"

	"github.com/ChuckFork/ZedGraph/chart/types"
)

// AxisKind carries the scale flags the aggregator needs about one axis.
// A text axis is a labelled ordinal axis; both behave ordinally for
// range purposes.
type AxisKind struct {
	Ordinal bool
	Text    bool
}

// OrdinalLike reports whether positions on the axis are sequential
// integers rather than data values.
func (a AxisKind) OrdinalLike() bool {
	return a.Ordinal || a.Text
}

// Context is the pane state the range and scheduling code depends on,
// passed explicitly per call. It never holds a reference back to the
// pane.
type Context struct {
	X  AxisKind
	Y  AxisKind
	Y2 AxisKind

	// ClusterScaleWidth is the base-axis width, in data units, reserved
	// for one cluster of bars.
	ClusterScaleWidth float64

	BarBase   types.BarBase
	StackMode types.StackMode

	// StackedLines accumulates line series the way stacked bars
	// accumulate.
	StackedLines bool
}

// StackEligible reports whether the series accumulates onto preceding
// series of the same kind under the context's stacking configuration.
// Sorted overlay is an overlay mode, not a stacking mode.
func StackEligible(ctx Context, s *types.Series) bool {
	switch s.Kind {
	case types.KindBar:
		return ctx.StackMode == types.StackModeStacked || ctx.StackMode == types.StackModePercent
	case types.KindLine:
		return ctx.StackedLines
	}
	return false
}

func sameStackGroup(ctx Context, a, b *types.Series) bool {
	return a.Kind == b.Kind && StackEligible(ctx, a) && StackEligible(ctx, b)
}

// StackValue resolves the accumulated (x, low, high) for one series at
// one ordinal index. For a non-stacked series low is the axis baseline
// zero and high is the raw value. For a stacked series low is the sum
// of the same-group series that precede it in collection order at the
// same index; series shorter than the index and missing values
// contribute nothing.
//
// An index beyond the series' own point count resolves silently to a
// no-contribution value (NaN x and high), never an error.
func StackValue(list types.SeriesList, ctx Context, s *types.Series, i int) (x, low, high float64) {
	if i < 0 || i >= s.PointCount() {
		return math.NaN(), 0, math.NaN()
	}

	p := s.Points[i]
	x = p.X
	if !StackEligible(ctx, s) {
		return x, 0, p.Y
	}

	low = 0
	for _, other := range list {
		if other == s {
			break
		}
		if !sameStackGroup(ctx, other, s) {
			continue
		}
		if i < other.PointCount() && !math.IsNaN(other.Points[i].Y) {
			low += other.Points[i].Y
		}
	}
	high = low + p.Y

	if s.Kind == types.KindBar && ctx.StackMode == types.StackModePercent {
		total := groupTotal(list, ctx, s, i)
		if total == 0 {
			return x, 0, 0
		}
		low = low / total * 100
		high = high / total * 100
	}
	return x, low, high
}

func groupTotal(list types.SeriesList, ctx Context, s *types.Series, i int) float64 {
	var total float64
	for _, other := range list {
		if !sameStackGroup(ctx, other, s) {
			continue
		}
		if i < other.PointCount() && !math.IsNaN(other.Points[i].Y) {
			total += other.Points[i].Y
		}
	}
	return total
}
