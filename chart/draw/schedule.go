// Package draw turns a series collection into an explicit back-to-front
// sequence of draw operations. Scheduling is a pure function of the
// collection and the pane context: it is re-run on every render and
// returns a deterministic permutation.
package draw

import (
	"math"
	"sort"

	"github.com/ChuckFork/ZedGraph/chart/ranges"
	"github.com/ChuckFork/ZedGraph/chart/types"
)

// WholeSeries is the Op.PointIndex value for an operation covering
// every point of its series.
const WholeSeries = -1

// Op is one scheduled draw operation. Ops are emitted back to front:
// executing them in slice order yields the correct visual layering.
type Op struct {
	Series *types.Series

	// PointIndex selects a single ordinal position for sorted-overlay
	// bar operations, or WholeSeries.
	PointIndex int

	// BarPosition is the series' slot within a bar cluster, used by the
	// renderer to offset bar bodies. Sorted-overlay operations all
	// share position zero.
	BarPosition int
}

// SeriesDrawer consumes scheduled operations. Renderers implement it;
// the scheduler never draws anything itself.
type SeriesDrawer interface {
	DrawSeries(op Op)
}

// Execute feeds ops to the drawer in slice order.
func Execute(ops []Op, d SeriesDrawer) {
	for _, op := range ops {
		d.DrawSeries(op)
	}
}

// Schedule computes the draw order for the collection.
//
// Under StackModeSortedOverlay every ordinal position 0..maxPoints-1
// first gets one operation per bar series, sorted ascending by that
// position's value alone, so overlapping bars layer value-ascending no
// matter the collection order. The remaining series are then emitted by
// walking the collection in reverse, so a series declared earlier
// occludes one declared later; bar series are skipped in that pass when
// the sorted overlay already covered them. The bar position counter
// decrements once per bar-kind series in the reverse pass regardless of
// skipping.
func Schedule(list types.SeriesList, ctx ranges.Context, maxPoints int) []Op {
	sorted := ctx.StackMode == types.StackModeSortedOverlay

	var ops []Op
	if sorted {
		var bars []*types.Series
		for _, s := range list {
			if s.IsBar() {
				bars = append(bars, s)
			}
		}
		sub := make([]*types.Series, len(bars))
		for i := 0; i < maxPoints; i++ {
			copy(sub, bars)
			sortAtPosition(sub, ctx, i)
			for _, s := range sub {
				ops = append(ops, Op{Series: s, PointIndex: i})
			}
		}
	}

	pos := list.NumBars()
	for i := len(list) - 1; i >= 0; i-- {
		s := list[i]
		if s.IsBar() {
			pos--
			if sorted {
				continue
			}
		}
		ops = append(ops, Op{Series: s, PointIndex: WholeSeries, BarPosition: pos})
	}
	return ops
}

// sortAtPosition stably sorts bar series ascending by their value at
// one ordinal position. Horizontal bars sort by X, vertical ones by Y.
// A missing or out-of-range value sorts first, keeping it at the back.
func sortAtPosition(sub []*types.Series, ctx ranges.Context, i int) {
	key := func(s *types.Series) float64 {
		if i >= s.PointCount() {
			return math.Inf(-1)
		}
		v := s.Points[i].Y
		if ctx.BarBase == types.BarBaseY {
			v = s.Points[i].X
		}
		if math.IsNaN(v) {
			return math.Inf(-1)
		}
		return v
	}
	sort.SliceStable(sub, func(a, b int) bool {
		return key(sub[a]) < key(sub[b])
	})
}
