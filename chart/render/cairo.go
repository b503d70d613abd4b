//go:build cairo
// +build cairo

package render

import (
	"bytes"
	"image/color"

	"github.com/evmar/gocairo/cairo"

	"github.com/ChuckFork/ZedGraph/chart/draw"
)

// Cairo is the Surface backend used when the binary is built with the
// cairo tag. It needs the cairo C library at link time.
type Cairo struct {
	surface *cairo.ImageSurface
	context *cairo.Context
}

var _ draw.Surface = (*Cairo)(nil)

func newSurface(width, height int) (pngSurface, error) {
	return NewCairo(width, height)
}

// NewCairo returns a cairo-backed surface of the given pixel size.
func NewCairo(width, height int) (*Cairo, error) {
	surface := cairo.ImageSurfaceCreate(cairo.FormatARGB32, width, height)
	cr := cairo.Create(surface.Surface)

	fontOpts := cairo.FontOptionsCreate()
	fontOpts.SetAntialias(cairo.AntialiasNone)
	cr.SetFontOptions(fontOpts)

	return &Cairo{surface: surface, context: cr}, nil
}

func (s *Cairo) SetColor(c color.RGBA) {
	r, g, b, a := c.RGBA()
	s.context.SetSourceRGBA(float64(r)/65536, float64(g)/65536, float64(b)/65536, float64(a)/65536)
}

func (s *Cairo) SetLineWidth(w float64) { s.context.SetLineWidth(w) }

func (s *Cairo) SetDash(dashes []float64) { s.context.SetDash(dashes, 0) }

func (s *Cairo) SetFontSize(points float64) { s.context.SetFontSize(points) }

func (s *Cairo) MoveTo(x, y float64) { s.context.MoveTo(x, y) }

func (s *Cairo) LineTo(x, y float64) { s.context.LineTo(x, y) }

func (s *Cairo) Stroke() { s.context.Stroke() }

func (s *Cairo) Fill() {
	s.context.ClosePath()
	s.context.Fill()
}

func (s *Cairo) Rectangle(x, y, w, h float64, fill bool) {
	s.context.Rectangle(x, y, w, h)
	if fill {
		s.context.Fill()
	} else {
		s.context.Stroke()
	}
}

func (s *Cairo) Arc(cx, cy, r, a1, a2 float64, fill bool) {
	if fill {
		s.context.MoveTo(cx, cy)
	}
	s.context.Arc(cx, cy, r, a1, a2)
	if fill {
		s.context.ClosePath()
		s.context.Fill()
	} else {
		s.context.Stroke()
	}
}

func (s *Cairo) Text(text string, x, y float64) {
	s.context.MoveTo(x, y)
	s.context.ShowText(text)
}

func (s *Cairo) TextExtents(text string) (w, h float64) {
	var t cairo.TextExtents
	s.context.TextExtents(text, &t)
	return t.Width, t.Height
}

// Bytes finalizes the surface and returns the encoded PNG.
func (s *Cairo) Bytes() ([]byte, error) {
	s.surface.Flush()

	var buf bytes.Buffer
	s.surface.WriteToPNG(&buf)
	s.surface.Finish()
	return buf.Bytes(), nil
}
