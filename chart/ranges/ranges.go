package ranges

import (
	"math"

	"github.com/ChuckFork/ZedGraph/chart/types"
)

// Bounds is the aggregated data extent of a series collection across
// the three chart axes, plus the largest point count seen. It is
// recomputed from scratch on every aggregation call and never cached.
type Bounds struct {
	XMin  float64
	XMax  float64
	YMin  float64
	YMax  float64
	Y2Min float64
	Y2Max float64

	// MaxPoints is the largest point count across all series, never
	// below 1.
	MaxPoints int
}

type extent struct {
	min float64
	max float64
}

func newExtent() extent {
	return extent{min: math.Inf(1), max: math.Inf(-1)}
}

func (e *extent) fold(min, max float64) {
	if min < e.min {
		e.min = min
	}
	if max > e.max {
		e.max = max
	}
}

func (e extent) valid() bool {
	return !math.IsInf(e.min, 1) && !math.IsInf(e.max, -1)
}

// ComputeRange walks the collection in order and merges every series'
// extent into global X, Y and Y2 bounds.
//
// Stack-eligible series are measured through StackValue so their extent
// reflects accumulated lows and highs. Ordinal axes override the
// per-series extent to [1, pointCount] regardless of the data. Bar
// series force their value axis across zero and, on a non-ordinal base
// axis, reserve half the cluster width on each side.
//
// Absence of data is not an error: an axis that received nothing falls
// back to [0, 1], with an empty Y borrowing Y2's bounds first (and vice
// versa) so a single-axis chart never reports an infinite secondary
// range.
func ComputeRange(list types.SeriesList, ctx Context, ignoreInitialZeros bool) Bounds {
	xAcc := newExtent()
	yAcc := newExtent()
	y2Acc := newExtent()
	maxPoints := 1

	for _, s := range list {
		n := s.PointCount()
		if n == 0 {
			continue
		}
		if n > maxPoints {
			maxPoints = n
		}

		x := newExtent()
		v := newExtent()
		if StackEligible(ctx, s) {
			stackedExtent(list, ctx, s, &x, &v)
		} else {
			xMin, xMax, yMin, yMax := s.Range(ignoreInitialZeros)
			x.fold(xMin, xMax)
			v.fold(yMin, yMax)
		}

		if ctx.X.OrdinalLike() {
			x = extent{min: 1, max: float64(n)}
		}
		if valueAxis(ctx, s).OrdinalLike() {
			v = extent{min: 1, max: float64(n)}
		}

		if s.IsBar() {
			base, value := &x, &v
			baseKind := ctx.X
			if ctx.BarBase == types.BarBaseY {
				base, value = &v, &x
				baseKind = valueAxis(ctx, s)
			}
			if value.valid() {
				if value.min > 0 {
					value.min = 0
				}
				if value.max < 0 {
					value.max = 0
				}
			}
			if base.valid() && !baseKind.OrdinalLike() {
				base.min -= ctx.ClusterScaleWidth / 2
				base.max += ctx.ClusterScaleWidth / 2
			}
		}

		xAcc.fold(x.min, x.max)
		if s.YAxis2 {
			y2Acc.fold(v.min, v.max)
		} else {
			yAcc.fold(v.min, v.max)
		}
	}

	yValid := yAcc.valid()
	y2Valid := y2Acc.valid()

	if !xAcc.valid() {
		xAcc = extent{min: 0, max: 1}
	}
	if !yValid {
		if y2Valid {
			yAcc = y2Acc
		} else {
			yAcc = extent{min: 0, max: 1}
		}
	}
	if !y2Valid {
		if yValid {
			y2Acc = yAcc
		} else {
			y2Acc = extent{min: 0, max: 1}
		}
	}

	return Bounds{
		XMin:  xAcc.min,
		XMax:  xAcc.max,
		YMin:  yAcc.min,
		YMax:  yAcc.max,
		Y2Min: y2Acc.min,
		Y2Max: y2Acc.max,

		MaxPoints: maxPoints,
	}
}

// valueAxis returns the axis the series' values land on.
func valueAxis(ctx Context, s *types.Series) AxisKind {
	if s.YAxis2 {
		return ctx.Y2
	}
	return ctx.Y
}

func stackedExtent(list types.SeriesList, ctx Context, s *types.Series, x, v *extent) {
	for i := 0; i < s.PointCount(); i++ {
		px, low, high := StackValue(list, ctx, s, i)
		if !math.IsNaN(px) {
			x.fold(px, px)
		}
		if math.IsNaN(high) {
			continue
		}
		if low <= high {
			v.fold(low, high)
		} else {
			v.fold(high, low)
		}
	}
}
