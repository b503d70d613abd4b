package draw

import "image/color"

// Rect is an axis-aligned rectangle in device coordinates.
type Rect struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Surface is the drawing surface contract the renderer and overlay
// graphics draw against. Backends exist for a pure-Go raster target and
// for cairo.
type Surface interface {
	SetColor(c color.RGBA)
	SetLineWidth(w float64)
	SetDash(dashes []float64)
	SetFontSize(points float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	Fill()

	Rectangle(x, y, w, h float64, fill bool)

	// Arc draws a circle segment between two angles in radians,
	// including the radii to the center when filling.
	Arc(cx, cy, r, a1, a2 float64, fill bool)

	Text(s string, x, y float64)
	TextExtents(s string) (w, h float64)
}
