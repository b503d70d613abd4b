// Package render rasterizes a pane to PNG. The default backend is a
// pure-Go raster surface; building with the cairo tag swaps in a
// cairo-backed one.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"

	"github.com/ChuckFork/ZedGraph/chart/draw"
	"github.com/ChuckFork/ZedGraph/chart/pane"
	"github.com/ChuckFork/ZedGraph/chart/ranges"
	"github.com/ChuckFork/ZedGraph/chart/types"
)

var ErrNoSurface = merry.New("surface creation failed")

// pngSurface is a Surface that can encode itself.
type pngSurface interface {
	draw.Surface
	Bytes() ([]byte, error)
}

// Render rasterizes the pane with the given parameters and returns the
// PNG bytes.
func Render(p *pane.Pane, params PictureParams) ([]byte, error) {
	sfc, err := newSurface(int(params.Width), int(params.Height))
	if err != nil {
		return nil, ErrNoSurface.Here().WithCause(err)
	}

	if err := Draw(p, params, sfc); err != nil {
		return nil, err
	}

	return sfc.Bytes()
}

// Draw renders the pane onto an existing surface. Callers that manage
// their own surfaces (or compose several panes onto one) use this
// directly.
func Draw(p *pane.Pane, params PictureParams, sfc draw.Surface) error {
	if params.GraphOnly {
		params.HideAxes = true
		params.HideGrid = true
		params.HideTitle = true
		params.HideLegend = true
		params.Margin = 0
	}

	r := &renderer{
		p:      p,
		ctx:    p.Context(),
		params: params,
		sfc:    sfc,
	}

	r.bounds = p.RecalcRange()
	r.applyParamBounds()

	sfc.SetFontSize(params.FontSize)
	sfc.SetColor(string2RGBA(params.BgColor))
	sfc.Rectangle(0, 0, params.Width, params.Height, true)

	r.layout()

	if !params.HideGrid {
		r.drawGrid()
	}
	if !params.HideAxes {
		r.drawAxes()
	}

	r.drawSeries()

	p.Objects.Draw(sfc, r.area, 1.0)

	if !params.HideTitle && p.Title != "" {
		r.drawTitle()
	}
	if !params.HideLegend {
		r.drawLegend()
	}

	return nil
}

type renderer struct {
	p      *pane.Pane
	ctx    ranges.Context
	params PictureParams
	sfc    draw.Surface

	bounds ranges.Bounds
	area   draw.Rect

	colorIdx int
	colorOf  map[*types.Series]string
	pies     []*types.Series
}

var _ draw.SeriesDrawer = (*renderer)(nil)

// applyParamBounds lets per-request axis limits win over both the
// computed extent and the pane axis configuration.
func (r *renderer) applyParamBounds() {
	p := &r.params
	if !math.IsNaN(p.XMin) {
		r.bounds.XMin = p.XMin
	}
	if !math.IsNaN(p.XMax) {
		r.bounds.XMax = p.XMax
	}
	if !math.IsNaN(p.YMin) {
		r.bounds.YMin = p.YMin
	}
	if !math.IsNaN(p.YMax) {
		r.bounds.YMax = p.YMax
	}
	if !math.IsNaN(p.Y2Min) {
		r.bounds.Y2Min = p.Y2Min
	}
	if !math.IsNaN(p.Y2Max) {
		r.bounds.Y2Max = p.Y2Max
	}

	// A flat series still needs a nonzero span to project into.
	if r.bounds.XMax <= r.bounds.XMin {
		r.bounds.XMax = r.bounds.XMin + 1
	}
	if r.bounds.YMax <= r.bounds.YMin {
		r.bounds.YMax = r.bounds.YMin + 1
	}
	if r.bounds.Y2Max <= r.bounds.Y2Min {
		r.bounds.Y2Max = r.bounds.Y2Min + 1
	}
}

func (r *renderer) layout() {
	margin := float64(r.params.Margin)
	r.area = draw.Rect{
		XMin: margin,
		XMax: r.params.Width - margin,
		YMin: margin,
		YMax: r.params.Height - margin,
	}

	if !r.params.HideTitle && r.p.Title != "" {
		_, th := r.sfc.TextExtents(r.p.Title)
		r.area.YMin += th + 10
	}
	if !r.params.HideLegend && len(r.p.Curves) > 0 {
		_, th := r.sfc.TextExtents("M")
		r.area.YMax -= th + 10
	}
	if !r.params.HideAxes {
		lw, _ := r.sfc.TextExtents(r.formatValue(r.bounds.YMax))
		r.area.XMin += lw + 8
		if r.hasY2() {
			rw, _ := r.sfc.TextExtents(r.formatValue(r.bounds.Y2Max))
			r.area.XMax -= rw + 8
		}
		_, th := r.sfc.TextExtents("0")
		r.area.YMax -= th + 8
	}
}

func (r *renderer) hasY2() bool {
	for _, s := range r.p.Curves {
		if s.YAxis2 {
			return true
		}
	}
	return false
}

// tx projects a data X coordinate into the plot area.
func (r *renderer) tx(x float64) float64 {
	return r.area.XMin + (x-r.bounds.XMin)/(r.bounds.XMax-r.bounds.XMin)*r.area.Width()
}

// ty projects a data Y coordinate into the plot area. Device Y grows
// downward, data Y upward.
func (r *renderer) ty(y float64, y2 bool) float64 {
	min, max := r.bounds.YMin, r.bounds.YMax
	if y2 {
		min, max = r.bounds.Y2Min, r.bounds.Y2Max
	}
	return r.area.YMax - (y-min)/(max-min)*r.area.Height()
}

func (r *renderer) seriesColor(s *types.Series) string {
	if s.Color != "" {
		return s.Color
	}
	c := r.params.ColorList[r.colorIdx%len(r.params.ColorList)]
	r.colorIdx++
	return c
}

func (r *renderer) setSeriesColor(s *types.Series, clr string) {
	c := string2RGBA(clr)
	alpha := r.params.AreaAlpha
	if s.HasAlpha {
		alpha = s.Alpha
	}
	if !math.IsNaN(alpha) && alpha >= 0 && alpha <= 1 {
		c.A = uint8(alpha * 255)
	}
	r.sfc.SetColor(c)
}

func (r *renderer) drawSeries() {
	// Colors follow collection order, not draw order, so a series keeps
	// its color whatever the scheduler decides.
	r.colorOf = make(map[*types.Series]string, len(r.p.Curves))
	for _, s := range r.p.Curves {
		r.colorOf[s] = r.seriesColor(s)
	}

	draw.Execute(draw.Schedule(r.p.Curves, r.ctx, r.bounds.MaxPoints), r)

	if len(r.pies) > 0 {
		r.drawPies(r.colorOf)
	}
}

// DrawSeries executes one scheduled operation.
func (r *renderer) DrawSeries(op draw.Op) {
	s := op.Series
	if s.Invisible || s.PointCount() == 0 {
		return
	}

	if op.PointIndex != draw.WholeSeries {
		r.setSeriesColor(s, r.colorOf[s])
		r.drawBarPoint(s, op.PointIndex, op.BarPosition)
		return
	}

	switch s.Kind {
	case types.KindBar:
		r.setSeriesColor(s, r.colorOf[s])
		for i := 0; i < s.PointCount(); i++ {
			r.drawBarPoint(s, i, op.BarPosition)
		}
	case types.KindPie:
		r.pies = append(r.pies, s)
	default:
		r.setSeriesColor(s, r.colorOf[s])
		r.drawLine(s)
	}
}

// drawBarPoint draws one bar of a series. In clustered mode position
// selects the slot inside the cluster; stacking modes overlay the full
// cluster width.
func (r *renderer) drawBarPoint(s *types.Series, i, position int) {
	x, low, high := ranges.StackValue(r.p.Curves, r.ctx, s, i)
	if math.IsNaN(x) || math.IsNaN(high) {
		return
	}

	cluster := r.ctx.ClusterScaleWidth
	numBars := r.p.Curves.NumBars()
	if numBars == 0 {
		return
	}

	base0 := x - cluster/2
	base1 := x + cluster/2
	if r.ctx.StackMode == types.StackModeNone {
		w := cluster / float64(numBars)
		base0 = x - cluster/2 + float64(position)*w
		base1 = base0 + w
	}

	if r.ctx.BarBase == types.BarBaseY {
		x0 := r.tx(low)
		x1 := r.tx(high)
		y0 := r.ty(base0, s.YAxis2)
		y1 := r.ty(base1, s.YAxis2)
		r.sfc.Rectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0), true)
		return
	}

	x0 := r.tx(base0)
	x1 := r.tx(base1)
	y0 := r.ty(low, s.YAxis2)
	y1 := r.ty(high, s.YAxis2)
	r.sfc.Rectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0), true)
}

func (r *renderer) drawLine(s *types.Series) {
	width := r.params.LineWidth
	if s.HasLineWidth {
		width = s.LineWidth
	}
	r.sfc.SetLineWidth(width)
	if s.Dashed > 0 {
		r.sfc.SetDash([]float64{s.Dashed, s.Dashed})
	} else {
		r.sfc.SetDash(nil)
	}

	if ranges.StackEligible(r.ctx, s) {
		r.drawStackedLine(s)
		return
	}

	started := false
	var prevY float64
	for _, pt := range s.Points {
		if pt.Missing() {
			if r.params.LineMode != LineModeConnected && started {
				r.sfc.Stroke()
				started = false
			}
			continue
		}

		x := r.tx(pt.X)
		y := r.ty(pt.Y, s.YAxis2)

		if !started {
			r.sfc.MoveTo(x, y)
			started = true
		} else if r.params.LineMode == LineModeStaircase {
			r.sfc.LineTo(x, prevY)
			r.sfc.LineTo(x, y)
		} else {
			r.sfc.LineTo(x, y)
		}
		prevY = y
	}
	if started {
		r.sfc.Stroke()
	}
}

// drawStackedLine fills the band between the running totals below the
// series and the totals including it.
func (r *renderer) drawStackedLine(s *types.Series) {
	n := s.PointCount()
	i := 0
	for i < n {
		// Skip gaps, then fill one contiguous run.
		_, _, high := ranges.StackValue(r.p.Curves, r.ctx, s, i)
		if math.IsNaN(high) {
			i++
			continue
		}

		start := i
		for i < n {
			_, _, h := ranges.StackValue(r.p.Curves, r.ctx, s, i)
			if math.IsNaN(h) {
				break
			}
			i++
		}
		r.fillRun(s, start, i)
	}
}

func (r *renderer) fillRun(s *types.Series, start, end int) {
	x, _, high := ranges.StackValue(r.p.Curves, r.ctx, s, start)
	r.sfc.MoveTo(r.tx(x), r.ty(high, s.YAxis2))
	for i := start + 1; i < end; i++ {
		x, _, high = ranges.StackValue(r.p.Curves, r.ctx, s, i)
		r.sfc.LineTo(r.tx(x), r.ty(high, s.YAxis2))
	}
	for i := end - 1; i >= start; i-- {
		x, low, _ := ranges.StackValue(r.p.Curves, r.ctx, s, i)
		r.sfc.LineTo(r.tx(x), r.ty(low, s.YAxis2))
	}
	r.sfc.Fill()
}

func (r *renderer) drawTitle() {
	w, h := r.sfc.TextExtents(r.p.Title)
	r.sfc.SetColor(string2RGBA(r.params.FgColor))
	r.sfc.Text(r.p.Title, (r.params.Width-w)/2, float64(r.params.Margin)+h)
}

func (r *renderer) drawLegend() {
	x := r.area.XMin
	y := r.params.Height - float64(r.params.Margin)
	_, th := r.sfc.TextExtents("M")

	r.colorIdx = 0
	for _, s := range r.p.Curves {
		if s.Invisible {
			continue
		}
		clr := r.seriesColor(s)
		r.sfc.SetColor(string2RGBA(clr))
		r.sfc.Rectangle(x, y-th, th, th, true)
		x += th + 4

		r.sfc.SetColor(string2RGBA(r.params.FgColor))
		r.sfc.Text(s.Label, x, y)
		tw, _ := r.sfc.TextExtents(s.Label)
		x += tw + 12
		if x > r.area.XMax {
			break
		}
	}
}

func (r *renderer) drawAxes() {
	r.sfc.SetColor(string2RGBA(r.params.FgColor))
	r.sfc.SetLineWidth(0.5)
	r.sfc.SetDash(nil)

	r.sfc.MoveTo(r.area.XMin, r.area.YMin)
	r.sfc.LineTo(r.area.XMin, r.area.YMax)
	r.sfc.LineTo(r.area.XMax, r.area.YMax)
	if r.hasY2() {
		r.sfc.LineTo(r.area.XMax, r.area.YMin)
	}
	r.sfc.Stroke()

	_, th := r.sfc.TextExtents("0")

	for _, t := range axisTicks(r.bounds.YMin, r.bounds.YMax) {
		label := r.formatValue(t)
		lw, lh := r.sfc.TextExtents(label)
		r.sfc.Text(label, r.area.XMin-lw-4, r.ty(t, false)+lh/2)
	}
	if r.hasY2() {
		for _, t := range axisTicks(r.bounds.Y2Min, r.bounds.Y2Max) {
			label := r.formatValue(t)
			_, lh := r.sfc.TextExtents(label)
			r.sfc.Text(label, r.area.XMax+4, r.ty(t, true)+lh/2)
		}
	}
	for _, t := range axisTicks(r.bounds.XMin, r.bounds.XMax) {
		label := r.formatValue(t)
		lw, _ := r.sfc.TextExtents(label)
		r.sfc.Text(label, r.tx(t)-lw/2, r.area.YMax+th+4)
	}
}

func (r *renderer) drawGrid() {
	r.sfc.SetColor(string2RGBA("darkgray"))
	r.sfc.SetLineWidth(0.4)
	r.sfc.SetDash(nil)

	for _, t := range axisTicks(r.bounds.YMin, r.bounds.YMax) {
		y := r.ty(t, false)
		r.sfc.MoveTo(r.area.XMin, y)
		r.sfc.LineTo(r.area.XMax, y)
		r.sfc.Stroke()
	}
	for _, t := range axisTicks(r.bounds.XMin, r.bounds.XMax) {
		x := r.tx(t)
		r.sfc.MoveTo(x, r.area.YMin)
		r.sfc.LineTo(x, r.area.YMax)
		r.sfc.Stroke()
	}
}

// formatValue renders an axis label, switching to SI suffixes for
// large magnitudes.
func (r *renderer) formatValue(v float64) string {
	if math.Abs(v) >= 10000 {
		return humanize.SIWithDigits(v, 1, "")
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return fmt.Sprintf("%.2f", v)
}

// axisTicks picks round tick positions covering [min, max].
func axisTicks(min, max float64) []float64 {
	span := max - min
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}

	step := math.Pow(10, math.Floor(math.Log10(span)))
	switch {
	case span/step >= 5:
		// keep
	case span/step >= 2:
		step /= 2
	default:
		step /= 5
	}

	var ticks []float64
	for t := math.Ceil(min/step) * step; t <= max+step/1e6; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}
