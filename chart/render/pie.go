package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ChuckFork/ZedGraph/chart/types"
)

// consolidate collapses a pie series into the single value its slice
// represents.
func consolidate(s *types.Series, mode PieMode) float64 {
	var ys []float64
	for _, pt := range s.Points {
		if !math.IsNaN(pt.Y) {
			ys = append(ys, pt.Y)
		}
	}
	if len(ys) == 0 {
		return math.NaN()
	}

	switch mode {
	case PieModeMaximum:
		return floats.Max(ys)
	case PieModeMinimum:
		return floats.Min(ys)
	default:
		return stat.Mean(ys, nil)
	}
}

// drawPies draws all pie series collected during the scheduling pass as
// one pie, a slice per series.
func (r *renderer) drawPies(colorOf map[*types.Series]string) {
	type slice struct {
		s *types.Series
		v float64
	}

	var slices []slice
	var total float64
	for _, s := range r.pies {
		v := consolidate(s, r.params.PieMode)
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		slices = append(slices, slice{s: s, v: v})
		total += v
	}
	if total == 0 {
		return
	}

	cx := r.area.XMin + r.area.Width()/2
	cy := r.area.YMin + r.area.Height()/2
	radius := math.Min(r.area.Width(), r.area.Height()) / 2

	angle := -math.Pi / 2
	for _, sl := range slices {
		sweep := sl.v / total * 2 * math.Pi
		r.setSeriesColor(sl.s, colorOf[sl.s])
		r.sfc.Arc(cx, cy, radius, angle, angle+sweep, true)
		angle += sweep
	}
}
