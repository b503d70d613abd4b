// Package graphics holds the overlay items drawn on top of a chart
// pane: boxes, arrows and text annotations. Items are positioned in
// pane-fraction coordinates (0..1 of the plot area) so they survive
// resizing.
package graphics

import (
	"image/color"
	"math"
	"sort"

	"github.com/ChuckFork/ZedGraph/chart/draw"
)

// Obj is one overlay graphic. Draw receives the plot area in device
// coordinates plus the font scale factor; PointInBox hit-tests a device
// point against the item's last drawn footprint.
type Obj interface {
	Draw(sfc draw.Surface, area draw.Rect, scale float64)
	PointInBox(x, y float64, area draw.Rect) bool

	// ZOrder orders items back (low) to front (high).
	ZOrder() int
}

// ObjList is an ordered overlay collection. It only iterates and
// delegates; the items own their geometry.
type ObjList []Obj

// Add appends an item.
func (l *ObjList) Add(o Obj) {
	*l = append(*l, o)
}

// Draw renders every item back to front by z-order. Items with equal
// z-order keep collection order.
func (l ObjList) Draw(sfc draw.Surface, area draw.Rect, scale float64) {
	ordered := make(ObjList, len(l))
	copy(ordered, l)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})
	for _, o := range ordered {
		o.Draw(sfc, area, scale)
	}
}

// FindPoint hit-tests front to back and returns the topmost item under
// the device point, or nil.
func (l ObjList) FindPoint(x, y float64, area draw.Rect) Obj {
	ordered := make(ObjList, len(l))
	copy(ordered, l)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].PointInBox(x, y, area) {
			return ordered[i]
		}
	}
	return nil
}

// Box is a filled or outlined rectangle annotation.
type Box struct {
	// X, Y, W, H are fractions of the plot area; Y grows downward.
	X, Y, W, H float64

	Border  color.RGBA
	Fill    color.RGBA
	HasFill bool

	Z int
}

func (b *Box) rect(area draw.Rect) draw.Rect {
	return draw.Rect{
		XMin: area.XMin + b.X*area.Width(),
		XMax: area.XMin + (b.X+b.W)*area.Width(),
		YMin: area.YMin + b.Y*area.Height(),
		YMax: area.YMin + (b.Y+b.H)*area.Height(),
	}
}

func (b *Box) Draw(sfc draw.Surface, area draw.Rect, scale float64) {
	r := b.rect(area)
	if b.HasFill {
		sfc.SetColor(b.Fill)
		sfc.Rectangle(r.XMin, r.YMin, r.Width(), r.Height(), true)
	}
	sfc.SetColor(b.Border)
	sfc.SetLineWidth(scale)
	sfc.Rectangle(r.XMin, r.YMin, r.Width(), r.Height(), false)
}

func (b *Box) PointInBox(x, y float64, area draw.Rect) bool {
	return b.rect(area).Contains(x, y)
}

func (b *Box) ZOrder() int { return b.Z }

// Arrow is a straight arrow between two fractional points.
type Arrow struct {
	X1, Y1, X2, Y2 float64

	Color    color.RGBA
	Width    float64
	HeadSize float64

	Z int
}

func (a *Arrow) Draw(sfc draw.Surface, area draw.Rect, scale float64) {
	x1 := area.XMin + a.X1*area.Width()
	y1 := area.YMin + a.Y1*area.Height()
	x2 := area.XMin + a.X2*area.Width()
	y2 := area.YMin + a.Y2*area.Height()

	sfc.SetColor(a.Color)
	w := a.Width
	if w == 0 {
		w = 1
	}
	sfc.SetLineWidth(w * scale)
	sfc.MoveTo(x1, y1)
	sfc.LineTo(x2, y2)
	sfc.Stroke()

	head := a.HeadSize
	if head == 0 {
		head = 6
	}
	head *= scale
	angle := math.Atan2(y2-y1, x2-x1)
	const flare = math.Pi / 7
	sfc.MoveTo(x2, y2)
	sfc.LineTo(x2-head*math.Cos(angle-flare), y2-head*math.Sin(angle-flare))
	sfc.LineTo(x2-head*math.Cos(angle+flare), y2-head*math.Sin(angle+flare))
	sfc.LineTo(x2, y2)
	sfc.Fill()
}

// PointInBox for an arrow tests the bounding box of its endpoints,
// grown by the head size.
func (a *Arrow) PointInBox(x, y float64, area draw.Rect) bool {
	x1 := area.XMin + a.X1*area.Width()
	y1 := area.YMin + a.Y1*area.Height()
	x2 := area.XMin + a.X2*area.Width()
	y2 := area.YMin + a.Y2*area.Height()
	pad := a.HeadSize
	if pad == 0 {
		pad = 6
	}
	r := draw.Rect{
		XMin: math.Min(x1, x2) - pad,
		XMax: math.Max(x1, x2) + pad,
		YMin: math.Min(y1, y2) - pad,
		YMax: math.Max(y1, y2) + pad,
	}
	return r.Contains(x, y)
}

func (a *Arrow) ZOrder() int { return a.Z }

// Text is a text annotation anchored at a fractional point.
type Text struct {
	S    string
	X, Y float64

	Color color.RGBA
	Size  float64

	Z int

	// lastBox is the device footprint from the most recent Draw;
	// PointInBox reflects it.
	lastBox draw.Rect
}

func (t *Text) Draw(sfc draw.Surface, area draw.Rect, scale float64) {
	x := area.XMin + t.X*area.Width()
	y := area.YMin + t.Y*area.Height()

	size := t.Size
	if size == 0 {
		size = 10
	}
	sfc.SetFontSize(size * scale)
	sfc.SetColor(t.Color)
	sfc.Text(t.S, x, y)

	w, h := sfc.TextExtents(t.S)
	t.lastBox = draw.Rect{XMin: x, XMax: x + w, YMin: y - h, YMax: y}
}

func (t *Text) PointInBox(x, y float64, area draw.Rect) bool {
	return t.lastBox.Contains(x, y)
}

func (t *Text) ZOrder() int { return t.Z }
